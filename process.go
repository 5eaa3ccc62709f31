package ledgercell

import "github.com/rs/zerolog"

// A Processor runs state-mutating invocations against program-owned
// accounts. Each invocation is synchronous and run-to-completion: it either
// fully succeeds, overwriting the account's record in place, or fully
// aborts with a typed *Error and the account's bytes untouched.
//
// A Processor is stateless apart from its configuration and is safe for
// concurrent use across different accounts. The host runtime that allocates
// accounts must serialize invocations against any single account; the
// processor doesn't lock.
type Processor struct {
	logger zerolog.Logger
}

// NewProcessor builds a Processor with the supplied options.
func NewProcessor(opts ...ProcessorOption) *Processor {
	cfg := processorCfg{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt.applyToProcessor(&cfg)
	}
	return &Processor{logger: cfg.logger}
}

// Process applies one untrusted payload to the first supplied account.
//
// The steps run in a fixed order, each short-circuiting on its failure
// code: the ownership guard (CodeNotAuthorized) runs before any other work,
// then the payload parse (CodeInvalidEncoding, CodeMalformedPayload), then
// decode, merge, and the in-place re-encode (CodeCapacityExceeded). The
// account's bytes change only when every step has succeeded.
func (p *Processor) Process(programID Identity, accounts []*Account, payload []byte) error {
	if len(accounts) == 0 {
		return errorf(CodeMissingAccount, "invocation supplied no account")
	}
	account := accounts[0]
	if account.Owner != programID {
		return errorf(CodeNotAuthorized, "account owner %s doesn't match invoking program %s", account.Owner, programID)
	}
	update, err := parsePayload(payload)
	if err != nil {
		return err
	}
	record := DecodeRecord(account.Data).apply(update)
	if err := record.EncodeInto(account.Data); err != nil {
		return err
	}
	p.logger.Info().
		Str("name", record.Name).
		Uint32("counter", record.Counter).
		Uint32("counter_seed", record.CounterSeed).
		Msg("applied account update")
	return nil
}
