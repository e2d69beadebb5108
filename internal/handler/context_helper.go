package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bazarhub/admin-api/internal/middleware"
	"github.com/bazarhub/admin-api/internal/models"
	"github.com/bazarhub/admin-api/pkg/response"
)

func claimsFromContext(c *gin.Context) *models.StaffClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.StaffClaims)
	if !ok {
		return nil
	}
	return claims
}

func idempotencyToken(c *gin.Context) string {
	return c.GetHeader("X-Idempotency-Key")
}

func ackOutcome(c *gin.Context, idempotent bool) {
	if idempotent {
		response.Idempotent(c)
		return
	}
	response.OK(c)
}
