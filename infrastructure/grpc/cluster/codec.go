// Package cluster holds the wire contract of archive.v1.ClusterService:
// the codec, the messages and the service description shared by the
// server and the client. cluster.proto is the schema they encode.
package cluster

import (
	"fmt"

	"google.golang.org/protobuf/proto"
)

const CodecName = "archive-wire"

// WireMessage is a message that writes itself in the protobuf wire format.
type WireMessage interface {
	MarshalWire() ([]byte, error)
	UnmarshalWire(b []byte) error
}

// Codec serializes the cluster messages, and well-known protobuf types as usual.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case WireMessage:
		return m.MarshalWire()
	case proto.Message:
		return proto.Marshal(m)
	default:
		return nil, fmt.Errorf("%s codec cannot marshal %T", CodecName, v)
	}
}

func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case WireMessage:
		return m.UnmarshalWire(data)
	case proto.Message:
		return proto.Unmarshal(data, m)
	default:
		return fmt.Errorf("%s codec cannot unmarshal into %T", CodecName, v)
	}
}

func (Codec) Name() string { return CodecName }
