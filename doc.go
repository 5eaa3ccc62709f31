// Package ledgercell implements a small on-chain state-mutation handler:
// given an account buffer owned by a program and an untrusted instruction
// payload, it checks ownership, decodes the account's fixed-layout record,
// applies the requested field updates, and re-encodes the record into the
// same buffer in place.
//
// All failures surface as typed *Error values carrying a Code; nothing in
// this package panics on bad input. Runtime concerns like allocating
// accounts, locking them, and exposing an invocation transport belong to the
// host (see cmd/ledgercelld for a reference host).
package ledgercell
