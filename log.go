package cuckoo

import "github.com/rs/zerolog"

// logAdapter is the narrow logging surface the core and its layouts use.
// It never influences control flow or return values — it only narrates
// growth, migration spill counts, and displacement-budget exhaustion.
type logAdapter interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// zerologAdapter is the default logAdapter, wrapping a zerolog.Logger.
type zerologAdapter struct {
	logger zerolog.Logger
}

func newZerologAdapter(logger zerolog.Logger) *zerologAdapter {
	return &zerologAdapter{logger: logger}
}

func (z *zerologAdapter) Debugf(format string, args ...interface{}) {
	z.logger.Debug().Msgf(format, args...)
}

func (z *zerologAdapter) Warnf(format string, args ...interface{}) {
	z.logger.Warn().Msgf(format, args...)
}
