package requestctx_test

import (
	"context"
	"testing"

	"github.com/telesign/telesign-go/requestctx"
)

func TestEnsureAddsARequestId(t *testing.T) {
	ctx := requestctx.Ensure(context.Background())
	if requestctx.GetRequestID(ctx) == "" {
		t.Error("Expected Ensure to add a request ID")
	}
}

func TestEnsureKeepsExistingRequestId(t *testing.T) {
	seeded := requestctx.NewContext(context.Background(), &requestctx.RequestCtx{RequestID: "my-trace-id"})
	ctx := requestctx.Ensure(seeded)
	if requestctx.GetRequestID(ctx) != "my-trace-id" {
		t.Errorf("Expected my-trace-id, got %s", requestctx.GetRequestID(ctx))
	}
}

func TestGetRequestIDWithoutContext(t *testing.T) {
	if requestctx.GetRequestID(context.Background()) != "" {
		t.Error("Expected empty request ID on a bare context")
	}
}
