package logging

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// New returns a logger with a text formatter writing to out at the named
// level ("debug", "info", "warn", ...).
func New(level string, out io.Writer) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	l := log.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return l, nil
}

type ctxKey struct{}

// NewContext returns a copy of ctx with the logger stored.
func NewContext(ctx context.Context, l log.FieldLogger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves a logger from ctx or returns the standard logger.
func FromContext(ctx context.Context) log.FieldLogger {
	if l, ok := ctx.Value(ctxKey{}).(log.FieldLogger); ok {
		return l
	}
	return log.StandardLogger()
}
