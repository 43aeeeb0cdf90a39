package store

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/masterbook/internal/metrics"
)

// DefaultWriteTimeout bounds a single background snapshot write.
const DefaultWriteTimeout = 5 * time.Second

type options struct {
	logger       *slog.Logger
	metrics      metrics.Recorder
	newID        func() string
	now          func() time.Time
	writeTimeout time.Duration
}

// Option configures a store.
type Option func(*options)

// WithLogger sets the logger used for swallowed load and write failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m metrics.Recorder) Option {
	return func(o *options) { o.metrics = m }
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) { o.newID = fn }
}

// WithClock replaces time.Now for CreatedAt stamps.
func WithClock(fn func() time.Time) Option {
	return func(o *options) { o.now = fn }
}

// WithWriteTimeout bounds each background snapshot write.
func WithWriteTimeout(d time.Duration) Option {
	return func(o *options) { o.writeTimeout = d }
}

func buildOptions(opts []Option) options {
	o := options{
		logger:       slog.Default(),
		metrics:      metrics.Nop{},
		newID:        uuid.NewString,
		now:          time.Now,
		writeTimeout: DefaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
