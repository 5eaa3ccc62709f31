package ledgercell

import "github.com/rs/zerolog"

type processorCfg struct {
	logger zerolog.Logger
}

// A ProcessorOption configures a Processor.
type ProcessorOption interface {
	applyToProcessor(*processorCfg)
}

type loggerOption struct {
	logger zerolog.Logger
}

// WithLogger installs a logger for success-path observability. The processor
// emits one event per applied mutation; unauthorized or malformed calls emit
// nothing, so a rejected caller learns nothing from the log. Logging never
// blocks or fails an invocation. The default is zerolog.Nop().
func WithLogger(logger zerolog.Logger) ProcessorOption {
	return &loggerOption{logger}
}

func (o *loggerOption) applyToProcessor(cfg *processorCfg) {
	cfg.logger = o.logger
}
