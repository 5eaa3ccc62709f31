package ledgercell

import (
	"strings"
	"testing"

	"ledgercell.dev/ledgercell/internal/assert"
)

func TestCodeMarshaling(t *testing.T) {
	var valid []Code
	for code := minCode; code <= maxCode; code++ {
		valid = append(valid, code)
	}

	t.Run("round-trip", func(t *testing.T) {
		for _, code := range valid {
			text, err := code.MarshalText()
			assert.Nil(t, err, assert.Sprintf("marshal code %v", code))
			var in Code
			assert.Nil(t, in.UnmarshalText(text), assert.Sprintf("unmarshal code from %q", text))
			assert.Equal(t, in, code, assert.Sprintf("round-trip failed"))
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		const tooBig = maxCode + 1
		_, err := Code(tooBig).MarshalText()
		assert.NotNil(t, err, assert.Sprintf("marshal invalid code"))
		_ = Code(tooBig).String() // shouldn't panic, output doesn't matter
		var code Code
		assert.NotNil(t, code.UnmarshalText([]byte("999")), assert.Sprintf("unmarshal out-of-bounds code"))
		assert.NotNil(t, code.UnmarshalText([]byte("foobar")), assert.Sprintf("unmarshal invalid code"))
	})

	t.Run("from string", func(t *testing.T) {
		var code Code
		assert.Nil(t, code.UnmarshalText([]byte("CAPACITY_EXCEEDED")), assert.Sprintf("unmarshal from name"))
		assert.Equal(t, code, CodeCapacityExceeded, assert.Sprintf("unmarshal from text"))
	})

	t.Run("to string", func(t *testing.T) {
		// Ensures that we don't forget to update the mapping in the Stringer
		// implementation.
		for _, code := range valid {
			assert.False(
				t,
				strings.HasPrefix(code.String(), "Code("),
				assert.Sprintf("code %d needs a name in String()", code),
			)
		}
	})
}
