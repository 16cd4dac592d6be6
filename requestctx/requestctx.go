package requestctx

import (
	"context"

	"github.com/google/uuid"
)

// RequestCtx tracks correlation info for one outbound API call. Each call
// gets a random ID which will be most likely a globally unique ID. Callers
// can seed their own RequestCtx upfront when they want several calls to
// share one ID (e.g. for troubleshooting).
type RequestCtx struct {
	RequestID string
}

type key int

var requestCtxKey key

func getRandomRequestId() string {
	return uuid.New().String()
}

func NewContext(ctx context.Context, rCtx *RequestCtx) context.Context {
	return context.WithValue(ctx, requestCtxKey, rCtx)
}

func FromContext(ctx context.Context) (*RequestCtx, bool) {
	rCtx, ok := ctx.Value(requestCtxKey).(*RequestCtx)
	return rCtx, ok
}

// Ensure returns a context that is guaranteed to carry a RequestCtx.
// An already present RequestCtx is left untouched.
func Ensure(ctx context.Context) context.Context {
	if _, ok := FromContext(ctx); ok {
		return ctx
	}
	return NewContext(ctx, &RequestCtx{RequestID: getRandomRequestId()})
}

func GetRequestID(ctx context.Context) string {
	rCtx, ok := FromContext(ctx)
	if ok {
		return rCtx.RequestID
	}
	return ""
}
