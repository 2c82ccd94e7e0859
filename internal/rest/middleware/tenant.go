package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/invoiceflow/invoiceflow/internal/types"
)

// TenantMiddleware resolves the tenant and acting user from request
// headers. Requests without a tenant header fall back to the default
// tenant so single-tenant deployments need no extra setup.
func TenantMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	tenantID := c.GetHeader(types.HeaderTenantID)
	if tenantID == "" {
		tenantID = types.DefaultTenantID
	}

	userID := c.GetHeader(types.HeaderUserID)
	if userID == "" {
		userID = types.DefaultUserID
	}

	ctx = context.WithValue(ctx, types.CtxTenantID, tenantID)
	ctx = context.WithValue(ctx, types.CtxUserID, userID)
	c.Request = c.Request.WithContext(ctx)

	c.Next()
}
