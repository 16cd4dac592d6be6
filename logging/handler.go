package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/telesign/telesign-go/requestctx"
)

// JSONRequestCtxHandler is a [Handler] that writes Records to an [io.Writer] as
// line-delimited JSON objects and annotates each record with the ID of the
// outbound API call it was logged under, if any.
type JSONRequestCtxHandler struct {
	wrappedHandler slog.Handler
}

func NewJSONRequestCtxHandler(w io.Writer, opts *slog.HandlerOptions) *JSONRequestCtxHandler {
	return &JSONRequestCtxHandler{slog.NewJSONHandler(w, opts)}
}

// Enabled reports whether the handler handles records at the given level.
// The handler ignores records whose level is lower.
func (h *JSONRequestCtxHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.wrappedHandler.Enabled(ctx, level)
}

// WithAttrs returns a new [JSONRequestCtxHandler] whose attributes consists
// of h's attributes followed by attrs.
func (h *JSONRequestCtxHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &JSONRequestCtxHandler{wrappedHandler: h.wrappedHandler.WithAttrs(attrs)}
}

func (h *JSONRequestCtxHandler) WithGroup(name string) slog.Handler {
	return &JSONRequestCtxHandler{wrappedHandler: h.wrappedHandler.WithGroup(name)}
}

func (h *JSONRequestCtxHandler) Handle(ctx context.Context, r slog.Record) error {
	rCtx, ok := requestctx.FromContext(ctx)
	if ok && rCtx.RequestID != "" {
		r.AddAttrs(slog.String("RequestId", rCtx.RequestID))
	}

	return h.wrappedHandler.Handle(ctx, r)
}
