package testutil

import (
	"context"

	"github.com/invoiceflow/invoiceflow/internal/types"
)

// SetupContext builds a context carrying the default tenant, user and a
// fresh request ID, matching what the middleware stack would attach.
func SetupContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxTenantID, types.DefaultTenantID)
	ctx = context.WithValue(ctx, types.CtxUserID, types.DefaultUserID)
	ctx = context.WithValue(ctx, types.CtxRequestID, types.GenerateUUID())
	return ctx
}
