package dllist

import (
	"fmt"

	"github.com/sirkon/dllist/internal/logging"
)

// Option опция создания последовательности.
type Option interface {
	String() string
	apply(c *config)
}

// WithLogger задаёт получателя событий последовательности.
// nil игнорируется.
func WithLogger(logger logging.Logger) Option {
	return withLogger{logger: logger}
}

type config struct {
	logger logging.Logger
}

func newConfig(opts []Option) config {
	c := config{
		logger: nopLogger{},
	}
	for _, opt := range opts {
		opt.apply(&c)
	}

	return c
}

type withLogger struct {
	logger logging.Logger
}

func (o withLogger) String() string {
	return fmt.Sprintf("set sequence logger %T", o.logger)
}

func (o withLogger) apply(c *config) {
	if o.logger == nil {
		return
	}

	c.logger = o.logger
}

type nopLogger struct{}

func (nopLogger) SequenceInsertSkipped(string) {}
func (nopLogger) SequenceRemoveSkipped() {}
func (nopLogger) SequenceCleared(uint64) {}
