// Package apiconnect wires the peticao.v1 services to Connect handlers and
// clients. Messages travel as JSON through a codec built on goccy/go-json.
package apiconnect

import (
	json "github.com/goccy/go-json"

	"connectrpc.com/connect"
)

// jsonCodec replaces Connect's default JSON codec, which only accepts
// protobuf messages.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// WithJSON is the codec option both handlers and clients are built with.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
