package client

import (
	"chat-archive/auth"
	"chat-archive/contract"
	"chat-archive/domain"
	archiveerrors "chat-archive/errors"
	"chat-archive/infrastructure/grpc/cluster"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Dialer opens the connection to a peer. Tests swap it for a bufconn dialer.
type Dialer func(node contract.NodeInfo) (*grpc.ClientConn, error)

// ClusterClient calls the node currently holding authority. Connections are
// opened on first use and kept per node id.
type ClusterClient struct {
	log        *slog.Logger
	membership contract.IMembership
	dial       Dialer

	mu    sync.Mutex
	conns map[string]*grpc.ClientConn
}

func NewClusterClient(log *slog.Logger, membership contract.IMembership, dial Dialer) *ClusterClient {
	return &ClusterClient{
		log:        log,
		membership: membership,
		dial:       dial,
		conns:      make(map[string]*grpc.ClientConn),
	}
}

// NodeDialer dials peers in plaintext and signs every call with a node token.
func NodeDialer(signer *auth.Signer, localID string) Dialer {
	return func(node contract.NodeInfo) (*grpc.ClientConn, error) {
		return grpc.NewClient(node.Addr,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithPerRPCCredentials(auth.NewNodeCredentials(signer, localID)),
		)
	}
}

func (c *ClusterClient) authority() (*cluster.ClusterServiceClient, error) {
	node, ok := c.membership.Authority()
	if !ok {
		return nil, archiveerrors.ErrNoAuthority
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	conn, ok := c.conns[node.ID]
	if !ok {
		var err error
		conn, err = c.dial(node)
		if err != nil {
			return nil, fmt.Errorf("dial %s at %s: %w", node.ID, node.Addr, err)
		}
		c.conns[node.ID] = conn
		c.log.Debug("Connected to authoritative node", "node_id", node.ID, "addr", node.Addr)
	}
	return cluster.NewClusterServiceClient(conn), nil
}

func (c *ClusterClient) ConversationCount(ctx context.Context) (int, error) {
	stub, err := c.authority()
	if err != nil {
		return 0, err
	}
	count, err := stub.ConversationCount(ctx, &emptypb.Empty{})
	if err != nil {
		return 0, archiveerrors.FromGRPCError(err)
	}
	return int(count.GetValue()), nil
}

func (c *ClusterClient) Conversation(ctx context.Context, id string) (domain.Conversation, error) {
	stub, err := c.authority()
	if err != nil {
		return domain.Conversation{}, err
	}
	reply, err := stub.GetConversation(ctx, wrapperspb.String(id))
	if err != nil {
		return domain.Conversation{}, archiveerrors.FromGRPCError(err)
	}
	if !reply.Found {
		return domain.Conversation{}, archiveerrors.ErrConversationNotFound
	}
	return reply.Conversation, nil
}

func (c *ClusterClient) Conversations(ctx context.Context) ([]domain.Conversation, error) {
	stub, err := c.authority()
	if err != nil {
		return nil, err
	}
	list, err := stub.ListConversations(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, archiveerrors.FromGRPCError(err)
	}
	return list.Conversations, nil
}

func (c *ClusterClient) ApplyEvents(ctx context.Context, events []domain.ConversationEvent) error {
	if len(events) == 0 {
		return nil
	}
	stub, err := c.authority()
	if err != nil {
		return err
	}
	if _, err = stub.ApplyEvents(ctx, &cluster.EventBatch{Events: events}); err != nil {
		return archiveerrors.FromGRPCError(err)
	}
	return nil
}

// Close releases every peer connection.
func (c *ClusterClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var firstErr error
	for id, conn := range c.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(c.conns, id)
	}
	return firstErr
}
