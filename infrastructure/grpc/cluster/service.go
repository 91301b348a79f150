package cluster

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ServiceName                     = "archive.v1.ClusterService"
	ConversationCountFullMethodName = "/" + ServiceName + "/ConversationCount"
	GetConversationFullMethodName   = "/" + ServiceName + "/GetConversation"
	ListConversationsFullMethodName = "/" + ServiceName + "/ListConversations"
	ApplyEventsFullMethodName       = "/" + ServiceName + "/ApplyEvents"
	RouteEventsFullMethodName       = "/" + ServiceName + "/RouteEvents"
	HistoryFullMethodName           = "/" + ServiceName + "/History"
	SummariesFullMethodName         = "/" + ServiceName + "/Summaries"
)

// ClusterServiceServer is implemented by every node. Only the authoritative one answers the
// conversation calls and ApplyEvents. RouteEvents is the chat server entry point. History and
// Summaries are served from the local store.
type ClusterServiceServer interface {
	ConversationCount(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error)
	GetConversation(context.Context, *wrapperspb.StringValue) (*ConversationReply, error)
	ListConversations(context.Context, *emptypb.Empty) (*ConversationList, error)
	ApplyEvents(context.Context, *EventBatch) (*emptypb.Empty, error)
	RouteEvents(context.Context, *EventBatch) (*emptypb.Empty, error)
	History(context.Context, *HistoryRequest) (*HistoryReply, error)
	Summaries(context.Context, *SummaryRequest) (*SummaryList, error)
}

func RegisterClusterServiceServer(s grpc.ServiceRegistrar, srv ClusterServiceServer) {
	s.RegisterService(&ClusterService_ServiceDesc, srv)
}

// ServerOption makes a server speak the cluster codec.
func ServerOption() grpc.ServerOption {
	return grpc.ForceServerCodec(Codec{})
}

func unaryHandler[Req any, Resp any](fullMethod string,
	call func(ClusterServiceServer, context.Context, *Req) (Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ClusterServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ClusterServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var ClusterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ClusterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ConversationCount",
			Handler:    unaryHandler(ConversationCountFullMethodName, ClusterServiceServer.ConversationCount),
		},
		{
			MethodName: "GetConversation",
			Handler:    unaryHandler(GetConversationFullMethodName, ClusterServiceServer.GetConversation),
		},
		{
			MethodName: "ListConversations",
			Handler:    unaryHandler(ListConversationsFullMethodName, ClusterServiceServer.ListConversations),
		},
		{
			MethodName: "ApplyEvents",
			Handler:    unaryHandler(ApplyEventsFullMethodName, ClusterServiceServer.ApplyEvents),
		},
		{
			MethodName: "RouteEvents",
			Handler:    unaryHandler(RouteEventsFullMethodName, ClusterServiceServer.RouteEvents),
		},
		{
			MethodName: "History",
			Handler:    unaryHandler(HistoryFullMethodName, ClusterServiceServer.History),
		},
		{
			MethodName: "Summaries",
			Handler:    unaryHandler(SummariesFullMethodName, ClusterServiceServer.Summaries),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "archive/v1/cluster.proto",
}

// ClusterServiceClient calls archive.v1.ClusterService with the cluster codec.
type ClusterServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewClusterServiceClient(cc grpc.ClientConnInterface) *ClusterServiceClient {
	return &ClusterServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any,
	opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ClusterServiceClient) ConversationCount(ctx context.Context, in *emptypb.Empty,
	opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	return invoke[wrapperspb.Int64Value](ctx, c.cc, ConversationCountFullMethodName, in, opts)
}

func (c *ClusterServiceClient) GetConversation(ctx context.Context, in *wrapperspb.StringValue,
	opts ...grpc.CallOption) (*ConversationReply, error) {
	return invoke[ConversationReply](ctx, c.cc, GetConversationFullMethodName, in, opts)
}

func (c *ClusterServiceClient) ListConversations(ctx context.Context, in *emptypb.Empty,
	opts ...grpc.CallOption) (*ConversationList, error) {
	return invoke[ConversationList](ctx, c.cc, ListConversationsFullMethodName, in, opts)
}

func (c *ClusterServiceClient) ApplyEvents(ctx context.Context, in *EventBatch,
	opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, ApplyEventsFullMethodName, in, opts)
}

func (c *ClusterServiceClient) RouteEvents(ctx context.Context, in *EventBatch,
	opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, RouteEventsFullMethodName, in, opts)
}

func (c *ClusterServiceClient) History(ctx context.Context, in *HistoryRequest,
	opts ...grpc.CallOption) (*HistoryReply, error) {
	return invoke[HistoryReply](ctx, c.cc, HistoryFullMethodName, in, opts)
}

func (c *ClusterServiceClient) Summaries(ctx context.Context, in *SummaryRequest,
	opts ...grpc.CallOption) (*SummaryList, error) {
	return invoke[SummaryList](ctx, c.cc, SummariesFullMethodName, in, opts)
}
