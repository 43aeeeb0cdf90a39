// Package api defines the request and response messages of the masterbook
// RPC API and the JSON codec they travel with.
//
// Messages are plain Go structs; the Connect handlers in package apiconnect
// register JSONCodec under the "json" name so clients talk application/json.
package api

import (
	"encoding/json"
	"fmt"
)

// JSONCodec marshals messages with encoding/json.
type JSONCodec struct{}

// Name is the codec name Connect negotiates on ("application/json").
func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
