package ledgercell

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// IdentitySize is the length, in bytes, of an Identity.
const IdentitySize = 32

// An Identity is the opaque token that names a program or an account owner.
// Identities carry no structure beyond equality: the dispatcher only ever
// compares them, never inspects them.
type Identity [IdentitySize]byte

// IdentityFromSeed derives an Identity deterministically from a seed string.
// The same seed always yields the same Identity.
func IdentityFromSeed(seed string) Identity {
	return Identity(sha256.Sum256([]byte(seed)))
}

// ParseIdentity decodes the hex form produced by String.
func ParseIdentity(s string) (Identity, error) {
	var id Identity
	raw, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("parse identity %q: %w", s, err)
	}
	if len(raw) != IdentitySize {
		return id, fmt.Errorf("parse identity: got %d bytes, want %d", len(raw), IdentitySize)
	}
	copy(id[:], raw)
	return id, nil
}

func (id Identity) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText implements encoding.TextMarshaler using the hex form.
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Identity) UnmarshalText(b []byte) error {
	parsed, err := ParseIdentity(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
