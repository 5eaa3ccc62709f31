package ledgercell

import (
	"testing"

	"ledgercell.dev/ledgercell/internal/assert"
)

func TestParsePayload(t *testing.T) {
	update, err := parsePayload([]byte(`{"name":"Ada","counter_seed":5}`))
	assert.Nil(t, err, assert.Sprintf("well-formed payload"))
	assert.Equal(t, update, updateRequest{Name: "Ada", CounterSeed: 5}, assert.Sprintf("extracted fields"))
}

func TestParsePayloadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "not json"},
		{"empty", ""},
		{"json null", "null"},
		{"wrong top-level shape", `["name","Ada"]`},
		{"missing name", `{"counter_seed":5}`},
		{"missing counter_seed", `{"name":"Ada"}`},
		{"numeric name", `{"name":7,"counter_seed":5}`},
		{"textual counter_seed", `{"name":"Ada","counter_seed":"five"}`},
		{"negative counter_seed", `{"name":"Ada","counter_seed":-1}`},
		{"unknown field", `{"name":"Ada","counter_seed":5,"extra":true}`},
		{"trailing document", `{"name":"Ada","counter_seed":5}{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePayload([]byte(tt.payload))
			lerr, ok := AsError(err)
			assert.True(t, ok, assert.Sprintf("failure is typed"))
			assert.Equal(t, lerr.Code(), CodeMalformedPayload, assert.Sprintf("payload %q", tt.payload))
		})
	}
}

func TestParsePayloadInvalidUTF8(t *testing.T) {
	_, err := parsePayload([]byte{'{', 0xFF, 0xFE, '}'})
	lerr, ok := AsError(err)
	assert.True(t, ok, assert.Sprintf("failure is typed"))
	assert.Equal(t, lerr.Code(), CodeInvalidEncoding, assert.Sprintf("invalid byte sequence"))
}
