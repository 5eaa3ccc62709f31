package ledgercell

import (
	"fmt"
	"strconv"
)

var strToCode = map[string]Code{
	"OK":                CodeOK,
	"NOT_AUTHORIZED":    CodeNotAuthorized,
	"INVALID_ENCODING":  CodeInvalidEncoding,
	"MALFORMED_PAYLOAD": CodeMalformedPayload,
	"CAPACITY_EXCEEDED": CodeCapacityExceeded,
	"MISSING_ACCOUNT":   CodeMissingAccount,
}

// A Code identifies why an invocation failed. There are no user-defined
// codes, so only the codes enumerated below are valid.
//
// The zero value is CodeOK, which is never carried by an error: successful
// invocations return a nil error rather than an *Error with CodeOK.
type Code uint32

const (
	CodeOK               Code = 0 // success
	CodeNotAuthorized    Code = 1 // account isn't owned by the invoking program
	CodeInvalidEncoding  Code = 2 // payload bytes aren't valid UTF-8
	CodeMalformedPayload Code = 3 // payload text isn't a well-formed update document
	CodeCapacityExceeded Code = 4 // encoded record doesn't fit the account buffer
	CodeMissingAccount   Code = 5 // invocation supplied no account to mutate

	minCode Code = CodeOK
	maxCode Code = CodeMissingAccount
)

// MarshalText implements encoding.TextMarshaler. Codes are marshaled in
// their numeric representations.
func (c Code) MarshalText() ([]byte, error) {
	if c < minCode || c > maxCode {
		return nil, fmt.Errorf("invalid code %v", c)
	}
	return []byte(strconv.Itoa(int(c))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts both numeric
// representations (as produced by MarshalText) and the all-caps names used
// in configuration and logs.
func (c *Code) UnmarshalText(b []byte) error {
	if n, ok := strToCode[string(b)]; ok {
		*c = n
		return nil
	}
	n, err := strconv.ParseUint(string(b), 10 /* base */, 32 /* bitsize */)
	if err != nil {
		return fmt.Errorf("invalid code %q", string(b))
	}
	code := Code(n)
	if code < minCode || code > maxCode {
		return fmt.Errorf("invalid code %v", n)
	}
	*c = code
	return nil
}

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeNotAuthorized:
		return "NotAuthorized"
	case CodeInvalidEncoding:
		return "InvalidEncoding"
	case CodeMalformedPayload:
		return "MalformedPayload"
	case CodeCapacityExceeded:
		return "CapacityExceeded"
	case CodeMissingAccount:
		return "MissingAccount"
	}
	return fmt.Sprintf("Code(%d)", c)
}
