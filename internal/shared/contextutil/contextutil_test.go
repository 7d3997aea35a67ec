package contextutil_test

import (
	"context"
	"testing"

	"go-dinas/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMetadata(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ctx = contextutil.WithAccountID(ctx, 4)
	ctx = contextutil.WithBranchID(ctx, 2)

	md := contextutil.ExtractMetadata(ctx)

	assert.Equal(t, contextutil.Metadata{RequestID: "rid-1", AccountID: 4, BranchID: 2}, md)
}

func TestGetLogger(t *testing.T) {
	fallback := zap.NewNop().Named("fallback")
	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))

	scoped := zap.NewNop().Named("scoped")
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))

	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
}
