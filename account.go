package ledgercell

// An Account is the fixed-capacity byte region a record persists in,
// together with the identity that owns it. The host runtime allocates
// accounts and serializes access to each one; the dispatcher only borrows an
// account for the duration of a single invocation, reading Data and then
// overwriting it in place.
//
// Data's length is its capacity. Nothing in this package grows, shrinks, or
// reslices Data; a mutation only ever changes its contents.
type Account struct {
	Owner Identity
	Data  []byte
}

// NewAccount allocates a zeroed account of the given capacity owned by
// owner. A zeroed account decodes as the zero Record.
func NewAccount(owner Identity, capacity int) *Account {
	return &Account{Owner: owner, Data: make([]byte, capacity)}
}
