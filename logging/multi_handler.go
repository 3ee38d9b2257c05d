package logging

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// MultiHandler fans a record out to every handler that is enabled for its
// level, e.g. a console handler at DEBUG and the database at WARN.
type MultiHandler struct {
	mu       *sync.Mutex
	handlers []slog.Handler
}

func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers, mu: &sync.Mutex{}}
}

func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, destHandler := range h.handlers {
		if destHandler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle passes r to each enabled handler. A failing handler does not keep
// the record from the others; all errors are joined.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	var errs []error
	for _, destHandler := range h.handlers {
		if !destHandler.Enabled(ctx, r.Level) {
			continue
		}
		if err := destHandler.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *MultiHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.derive(func(dest slog.Handler) slog.Handler { return dest.WithGroup(name) })
}

func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.derive(func(dest slog.Handler) slog.Handler { return dest.WithAttrs(attrs) })
}

func (h *MultiHandler) derive(fn func(slog.Handler) slog.Handler) *MultiHandler {
	h2 := *h
	h2.handlers = make([]slog.Handler, len(h.handlers))
	for i, dest := range h.handlers {
		h2.handlers[i] = fn(dest)
	}
	return &h2
}
