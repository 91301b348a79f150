package server

import (
	"chat-archive/contract"
	archiveerrors "chat-archive/errors"
	"chat-archive/infrastructure/grpc/cluster"
	"chat-archive/services"
	"context"
	"errors"
	"log/slog"

	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type ClusterServer struct {
	log        *slog.Logger
	archive    services.IArchiveService
	history    services.IHistoryService
	applier    contract.IEventApplier
	router     contract.IEventRouter
	membership contract.IMembership
}

func NewClusterServer(log *slog.Logger, archive services.IArchiveService, history services.IHistoryService,
	applier contract.IEventApplier, router contract.IEventRouter, membership contract.IMembership) *ClusterServer {
	return &ClusterServer{
		log:        log,
		archive:    archive,
		history:    history,
		applier:    applier,
		router:     router,
		membership: membership,
	}
}

// requireAuthority stops a directory call from bouncing between two nodes
// that both believe the other one is authoritative.
func (s *ClusterServer) requireAuthority() error {
	if !s.membership.IsAuthoritative() {
		return archiveerrors.MapToGRPCError(archiveerrors.ErrNotAuthoritative)
	}
	return nil
}

func (s *ClusterServer) ConversationCount(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.Int64Value, error) {
	if err := s.requireAuthority(); err != nil {
		return nil, err
	}
	count, err := s.archive.ConversationCount(ctx)
	if err != nil {
		return nil, archiveerrors.MapToGRPCError(err)
	}
	return wrapperspb.Int64(int64(count)), nil
}

func (s *ClusterServer) GetConversation(ctx context.Context, req *wrapperspb.StringValue) (*cluster.ConversationReply, error) {
	if err := s.requireAuthority(); err != nil {
		return nil, err
	}
	c, err := s.archive.Conversation(ctx, req.GetValue())
	switch {
	case errors.Is(err, archiveerrors.ErrConversationNotFound):
		return &cluster.ConversationReply{}, nil
	case err != nil:
		return nil, archiveerrors.MapToGRPCError(err)
	}
	return &cluster.ConversationReply{Found: true, Conversation: c}, nil
}

func (s *ClusterServer) ListConversations(ctx context.Context, _ *emptypb.Empty) (*cluster.ConversationList, error) {
	if err := s.requireAuthority(); err != nil {
		return nil, err
	}
	conversations, err := s.archive.Conversations(ctx)
	if err != nil {
		return nil, archiveerrors.MapToGRPCError(err)
	}
	return &cluster.ConversationList{Conversations: conversations}, nil
}

// ApplyEvents replays forwarded events in order. A rejected event is logged
// and skipped, the rest of the batch still goes through.
func (s *ClusterServer) ApplyEvents(ctx context.Context, req *cluster.EventBatch) (*emptypb.Empty, error) {
	if err := s.requireAuthority(); err != nil {
		return nil, err
	}
	for _, event := range req.Events {
		if err := s.applier.Apply(ctx, event); err != nil {
			s.log.Warn("Forwarded event rejected",
				"message_id", event.MessageID, "kind", event.Kind(), "error", err)
		}
	}
	return &emptypb.Empty{}, nil
}

// RouteEvents hands chat server events to the router. Routing is best-effort,
// so the call only fails on a malformed request.
func (s *ClusterServer) RouteEvents(ctx context.Context, req *cluster.EventBatch) (*emptypb.Empty, error) {
	for _, event := range req.Events {
		s.router.Route(ctx, event)
	}
	return &emptypb.Empty{}, nil
}

func (s *ClusterServer) History(ctx context.Context, req *cluster.HistoryRequest) (*cluster.HistoryReply, error) {
	history, err := s.history.History(ctx, req.Query)
	if err != nil {
		return nil, archiveerrors.MapToGRPCError(err)
	}
	return &cluster.HistoryReply{History: history}, nil
}

func (s *ClusterServer) Summaries(ctx context.Context, req *cluster.SummaryRequest) (*cluster.SummaryList, error) {
	summaries, err := s.history.ListConversations(ctx, req.Owner, req.Window, req.Limit)
	if err != nil {
		return nil, archiveerrors.MapToGRPCError(err)
	}
	return &cluster.SummaryList{Summaries: summaries}, nil
}
