package cluster

import (
	"chat-archive/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

// schema mirrors the messages of cluster.proto that carry events and history,
// so the hand-written codec is checked against what protoc peers send.
func schema(t *testing.T) protoreflect.FileDescriptor {
	const pkg = ".archive.v1."
	str := descriptorpb.FieldDescriptorProto_TYPE_STRING
	i64 := descriptorpb.FieldDescriptorProto_TYPE_INT64
	boolean := descriptorpb.FieldDescriptorProto_TYPE_BOOL
	field := func(name string, num int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
		return &descriptorpb.FieldDescriptorProto{
			Name:   proto.String(name),
			Number: proto.Int32(num),
			Type:   typ.Enum(),
			Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		}
	}
	status := func(num int32) *descriptorpb.FieldDescriptorProto {
		f := field("status", num, descriptorpb.FieldDescriptorProto_TYPE_ENUM)
		f.TypeName = proto.String(pkg + "MessageStatus")
		return f
	}
	repeated := func(name, typeName string) *descriptorpb.FieldDescriptorProto {
		f := field(name, 1, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
		f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
		f.TypeName = proto.String(pkg + typeName)
		return f
	}
	optional := func(name string, num int32, typ descriptorpb.FieldDescriptorProto_Type, oneof int32) *descriptorpb.FieldDescriptorProto {
		f := field(name, num, typ)
		f.Proto3Optional = proto.Bool(true)
		f.OneofIndex = proto.Int32(oneof)
		return f
	}
	oneofs := func(names ...string) []*descriptorpb.OneofDescriptorProto {
		var decls []*descriptorpb.OneofDescriptorProto
		for _, n := range names {
			decls = append(decls, &descriptorpb.OneofDescriptorProto{Name: proto.String(n)})
		}
		return decls
	}
	value := func(name string, num int32) *descriptorpb.EnumValueDescriptorProto {
		return &descriptorpb.EnumValueDescriptorProto{Name: proto.String(name), Number: proto.Int32(num)}
	}

	file := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("cluster.proto"),
		Package: proto.String("archive.v1"),
		Syntax:  proto.String("proto3"),
		EnumType: []*descriptorpb.EnumDescriptorProto{{
			Name: proto.String("MessageStatus"),
			Value: []*descriptorpb.EnumValueDescriptorProto{
				value("MESSAGE_STATUS_UNSPECIFIED", 0),
				value("MESSAGE_STATUS_SENT", 1),
				value("MESSAGE_STATUS_DELIVERED", 2),
				value("MESSAGE_STATUS_READ", 3),
				value("MESSAGE_STATUS_FAILED", 4),
			},
		}},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("ArchivedMessage"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("id", 1, str), field("conversation_id", 2, str), field("from", 3, str),
					field("to", 4, str), field("body", 5, str), status(6),
					field("created_at", 7, i64), field("updated_at", 8, i64),
				},
			},
			{
				Name: proto.String("ConversationEvent"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("message_id", 1, str), field("sender", 2, str), field("receiver", 3, str),
					status(4), field("timestamp", 5, i64), field("body", 6, str),
				},
			},
			{
				Name:  proto.String("EventBatch"),
				Field: []*descriptorpb.FieldDescriptorProto{repeated("events", "ConversationEvent")},
			},
			{
				Name: proto.String("HistoryRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("owner", 1, str), field("with", 2, str), field("start", 3, i64), field("end", 4, i64),
					optional("max", 5, i64, 0), optional("index", 6, i64, 1),
					optional("after", 7, str, 2), optional("before", 8, str, 3),
				},
				OneofDecl: oneofs("_max", "_index", "_after", "_before"),
			},
			{
				Name: proto.String("HistoryReply"),
				Field: []*descriptorpb.FieldDescriptorProto{
					repeated("messages", "ArchivedMessage"),
					field("first_index", 2, i64), field("count", 3, i64), field("complete", 4, boolean),
				},
			},
		},
	}
	fd, err := protodesc.NewFile(file, nil)
	require.NoError(t, err)
	return fd
}

func TestHistoryRequest_ReadByProtobufPeer(t *testing.T) {
	req := require.New(t)
	messages := schema(t).Messages()
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	limit := 0
	after := "m4"

	raw, err := (&HistoryRequest{Query: domain.HistoryQuery{
		Owner:  "alice@x.org",
		With:   "bob@x.org",
		Window: domain.Window{Start: start},
		Page:   domain.PageRequest{Max: &limit, After: &after},
	}}).MarshalWire()
	req.NoError(err)

	desc := messages.ByName("HistoryRequest")
	msg := dynamicpb.NewMessage(desc)
	req.NoError(proto.Unmarshal(raw, msg))
	get := func(name protoreflect.Name) protoreflect.Value { return msg.Get(desc.Fields().ByName(name)) }

	req.Equal("alice@x.org", get("owner").String())
	req.Equal("bob@x.org", get("with").String())
	req.Equal(start.UnixMilli(), get("start").Int())
	req.False(msg.Has(desc.Fields().ByName("end")))
	// A zero max keeps its presence
	req.True(msg.Has(desc.Fields().ByName("max")))
	req.Zero(get("max").Int())
	req.False(msg.Has(desc.Fields().ByName("index")))
	req.Equal("m4", get("after").String())
	req.False(msg.Has(desc.Fields().ByName("before")))
}

func TestHistoryReply_WrittenByProtobufPeer(t *testing.T) {
	req := require.New(t)
	messages := schema(t).Messages()
	at := time.Date(2026, 3, 1, 10, 0, 5, 0, time.UTC)

	messageDesc := messages.ByName("ArchivedMessage")
	m := dynamicpb.NewMessage(messageDesc)
	set := func(msg *dynamicpb.Message, name protoreflect.Name, v protoreflect.Value) {
		msg.Set(msg.Descriptor().Fields().ByName(name), v)
	}
	set(m, "id", protoreflect.ValueOfString("m5"))
	set(m, "conversation_id", protoreflect.ValueOfString("c1"))
	set(m, "from", protoreflect.ValueOfString("alice@x.org/phone"))
	set(m, "to", protoreflect.ValueOfString("bob@x.org"))
	set(m, "body", protoreflect.ValueOfString("hello"))
	set(m, "status", protoreflect.ValueOfEnum(protoreflect.EnumNumber(domain.StatusRead)))
	set(m, "created_at", protoreflect.ValueOfInt64(at.UnixMilli()))
	set(m, "updated_at", protoreflect.ValueOfInt64(at.Add(time.Second).UnixMilli()))

	reply := dynamicpb.NewMessage(messages.ByName("HistoryReply"))
	list := reply.Mutable(reply.Descriptor().Fields().ByName("messages")).List()
	list.Append(protoreflect.ValueOfMessage(m))
	set(reply, "first_index", protoreflect.ValueOfInt64(4))
	set(reply, "count", protoreflect.ValueOfInt64(10))
	raw, err := proto.Marshal(reply)
	req.NoError(err)

	var decoded HistoryReply
	req.NoError(decoded.UnmarshalWire(raw))

	req.Equal(domain.History{
		Messages: []domain.ArchivedMessage{{
			ID: "m5", ConversationID: "c1", From: "alice@x.org/phone", To: "bob@x.org", Body: "hello",
			Status: domain.StatusRead, CreatedAt: at, UpdatedAt: at.Add(time.Second),
		}},
		Page: domain.PageResult{FirstIndex: 4, Count: 10, Complete: false},
	}, decoded.History)
}

func TestEventBatch_RoundTripsThroughProtobufPeer(t *testing.T) {
	req := require.New(t)
	messages := schema(t).Messages()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	batch := &EventBatch{Events: []domain.ConversationEvent{
		{MessageID: "m1", Sender: "alice@x.org/phone", Receiver: "bob@x.org", Status: domain.StatusSent, Timestamp: at, Body: "hi"},
		{MessageID: "m1", Sender: "bob@x.org", Receiver: "alice@x.org", Status: domain.StatusDelivered, Timestamp: at.Add(time.Second)},
	}}
	raw, err := batch.MarshalWire()
	req.NoError(err)

	// The peer reads the batch, then sends it back re-encoded
	peer := dynamicpb.NewMessage(messages.ByName("EventBatch"))
	req.NoError(proto.Unmarshal(raw, peer))
	events := peer.Get(peer.Descriptor().Fields().ByName("events")).List()
	req.Equal(2, events.Len())
	second := events.Get(1).Message()
	req.Equal(protoreflect.EnumNumber(domain.StatusDelivered),
		second.Get(second.Descriptor().Fields().ByName("status")).Enum())

	back, err := proto.Marshal(peer)
	req.NoError(err)
	var decoded EventBatch
	req.NoError(decoded.UnmarshalWire(back))
	req.Equal(batch.Events, decoded.Events)
}
