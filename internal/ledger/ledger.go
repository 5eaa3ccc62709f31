// Package ledger is the host-runtime side of account management: it
// allocates fixed-capacity accounts for a single program and serializes all
// access to each one.
package ledger

import (
	"crypto/rand"
	"errors"
	"fmt"
	"sync"

	"ledgercell.dev/ledgercell"
)

// ErrNotFound reports an address with no allocated account.
var ErrNotFound = errors.New("account not found")

// A Ledger holds the accounts owned by one program. Invocations against
// different accounts may run concurrently; access to any single account is
// serialized through its entry lock, which is the runtime obligation the
// processor itself doesn't take on.
type Ledger struct {
	program ledgercell.Identity

	mu      sync.RWMutex
	entries map[ledgercell.Identity]*entry
}

type entry struct {
	mu      sync.Mutex
	account *ledgercell.Account
}

// New builds an empty ledger whose accounts are owned by program.
func New(program ledgercell.Identity) *Ledger {
	return &Ledger{
		program: program,
		entries: make(map[ledgercell.Identity]*entry),
	}
}

// Program returns the identity that owns every account in the ledger.
func (l *Ledger) Program() ledgercell.Identity {
	return l.program
}

// Create allocates a zeroed account of the given capacity and returns its
// freshly generated address.
func (l *Ledger) Create(capacity int) (ledgercell.Identity, error) {
	if capacity < 0 {
		return ledgercell.Identity{}, fmt.Errorf("create account: negative capacity %d", capacity)
	}
	var addr ledgercell.Identity
	if _, err := rand.Read(addr[:]); err != nil {
		return ledgercell.Identity{}, fmt.Errorf("create account: %w", err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[addr] = &entry{account: ledgercell.NewAccount(l.program, capacity)}
	return addr, nil
}

// With runs fn with exclusive access to the account at addr. The account
// pointer is only valid inside fn; callers must not retain it.
func (l *Ledger) With(addr ledgercell.Identity, fn func(*ledgercell.Account) error) error {
	l.mu.RLock()
	e, ok := l.entries[addr]
	l.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.account)
}

// Snapshot returns a copy of the account at addr. The returned account
// shares no memory with the stored one, so readers never observe a
// half-applied mutation.
func (l *Ledger) Snapshot(addr ledgercell.Identity) (ledgercell.Account, error) {
	var snap ledgercell.Account
	err := l.With(addr, func(account *ledgercell.Account) error {
		snap.Owner = account.Owner
		snap.Data = append([]byte(nil), account.Data...)
		return nil
	})
	return snap, err
}
