package e2e

import (
	"chat-archive/auth"
	"chat-archive/infrastructure/grpc/cluster"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type BaseGrpcSuite struct {
	suite.Suite
	Config Config
	signer *auth.Signer
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseGrpcSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.NodeAddr == "" {
		s.T().Skip("ARCHIVE_NODE_ADDR not set, skipping end to end suite")
	}
	s.signer, err = auth.NewSigner(s.Config.ClusterSecret, time.Minute)
	s.Require().NoError(err)
}

// GrpcConn initializes a signed gRPC connection with logging and colors
func (s *BaseGrpcSuite) GrpcConn(t *testing.T, name string, addr string) *grpc.ClientConn {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithPerRPCCredentials(auth.NewNodeCredentials(s.signer, "e2e")),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))

			// Log full request/response bodies if E2E_DEBUG_JSON is enabled
			if s.Config.DebugJSON {
				fmt.Fprintf(&logBuilder, "\nREQUEST:\n%+v\n", req)
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintf(&logBuilder, "RESPONSE:\n%+v\n", reply)
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+addr)
	return conn
}

// WithNode provides a ClusterService client within a contextual test step
func (s *BaseGrpcSuite) WithNode(name string, fn func(ctx context.Context, client *cluster.ClusterServiceClient)) {
	conn := s.GrpcConn(s.T(), name, s.Config.NodeAddr)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fn(ctx, cluster.NewClusterServiceClient(conn))
}
