// Package wellnessrpc is the wire contract between the wellness server and
// its clients: request and response messages, a JSON gRPC codec, the service
// descriptor and a typed client.
package wellnessrpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// CodecName is the gRPC content-subtype the messages travel under.
const CodecName = "json"

// jsonCodec encodes the plain Go messages of this package with encoding/json.
// Generated protobuf messages, such as the health service's, go through
// protojson so they can share the content-subtype.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return protojson.Unmarshal(data, m)
	}
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
