// Package grpccodec registers a JSON codec for gRPC. Clients opt in with the
// "json" content subtype; protobuf messages are encoded with protojson and
// everything else with encoding/json.
package grpccodec

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Name is the content subtype the codec is registered under
const Name = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec marshals gRPC messages as JSON
type Codec struct{}

// Marshal encodes v as JSON
func (Codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json codec: marshal %T: %w", v, err)
	}
	return data, nil
}

// Unmarshal decodes JSON data into v
func (Codec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return protojson.Unmarshal(data, m)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec: unmarshal %T: %w", v, err)
	}
	return nil
}

// Name returns the codec's content subtype
func (Codec) Name() string {
	return Name
}

// CallOption selects the JSON codec for a call
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(Name)
}
