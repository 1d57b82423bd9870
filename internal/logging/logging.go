// Package logging routes slog records to the console by severity.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/phsym/console-slog"
)

const (
	LevelTrace = slog.LevelDebug - 4
	LevelFatal = slog.LevelError + 4
)

// Handler writes records below LevelWarn to one writer and the rest to
// another.
type Handler struct {
	out slog.Handler
	err slog.Handler
}

func NewHandler(out, errOut io.Writer, level slog.Leveler) *Handler {
	opts := &console.HandlerOptions{Level: level}
	return &Handler{
		out: console.NewHandler(out, opts),
		err: console.NewHandler(errOut, opts),
	}
}

func (h *Handler) pick(level slog.Level) slog.Handler {
	if level >= slog.LevelWarn {
		return h.err
	}
	return h.out
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.pick(level).Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	return h.pick(r.Level).Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{out: h.out.WithAttrs(attrs), err: h.err.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out.WithGroup(name), err: h.err.WithGroup(name)}
}

// Init installs a Handler on stdout and stderr as the default logger.
func Init(out, errOut io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(NewHandler(out, errOut, level)))
}
