package xlog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/lo"
)

// MultiHandler fans every record out to all of the given handlers.
func MultiHandler(handlers ...slog.Handler) slog.Handler {
	return multiHandler(handlers)
}

type multiHandler []slog.Handler

func (h multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return lo.SomeBy(h, func(handler slog.Handler) bool {
		return handler.Enabled(ctx, level)
	})
}

func (h multiHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, handler := range h {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		errs = append(errs, handler.Handle(ctx, record.Clone()))
	}
	return errors.Join(errs...)
}

func (h multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return multiHandler(lo.Map(h, func(handler slog.Handler, _ int) slog.Handler {
		return handler.WithAttrs(attrs)
	}))
}

func (h multiHandler) WithGroup(name string) slog.Handler {
	return multiHandler(lo.Map(h, func(handler slog.Handler, _ int) slog.Handler {
		return handler.WithGroup(name)
	}))
}
