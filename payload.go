package ledgercell

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"
)

// updateRequest is the typed form of one invocation's payload. Both fields
// are required: either the whole document is extracted or the parse fails,
// so a mutation never sees a partially-populated request.
type updateRequest struct {
	Name        string
	CounterSeed uint32
}

// wireUpdate uses pointer fields to distinguish absent keys from zero
// values.
type wireUpdate struct {
	Name        *string `json:"name"`
	CounterSeed *uint32 `json:"counter_seed"`
}

// parsePayload turns untrusted payload bytes into an updateRequest. The
// bytes must be valid UTF-8 (CodeInvalidEncoding) encoding a single JSON
// object with exactly the fields "name" and "counter_seed"
// (CodeMalformedPayload otherwise).
func parsePayload(payload []byte) (updateRequest, error) {
	if !utf8.Valid(payload) {
		return updateRequest{}, errorf(CodeInvalidEncoding, "payload isn't valid UTF-8")
	}
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.DisallowUnknownFields()
	var wire wireUpdate
	if err := decoder.Decode(&wire); err != nil {
		return updateRequest{}, errorf(CodeMalformedPayload, "decode payload: %w", err)
	}
	if decoder.More() {
		return updateRequest{}, errorf(CodeMalformedPayload, "trailing data after payload document")
	}
	if wire.Name == nil {
		return updateRequest{}, errorf(CodeMalformedPayload, "payload is missing required field %q", "name")
	}
	if wire.CounterSeed == nil {
		return updateRequest{}, errorf(CodeMalformedPayload, "payload is missing required field %q", "counter_seed")
	}
	return updateRequest{Name: *wire.Name, CounterSeed: *wire.CounterSeed}, nil
}
