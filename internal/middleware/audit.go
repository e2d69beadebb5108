package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/bazarhub/admin-api/internal/models"
	"github.com/bazarhub/admin-api/internal/repository"
)

// AuditDownload records an audit trail entry after a successful export
// download. Failures here never affect the response already sent.
func AuditDownload(repo *repository.AuditRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() >= 400 {
			return
		}

		var adminID, adminEmail *string
		if claimsValue, ok := c.Get(ContextUserKey); ok {
			claims := claimsValue.(*models.StaffClaims)
			adminID = &claims.StaffID
			adminEmail = &claims.Email
		}

		format := c.DefaultQuery("format", "csv")
		details := fmt.Sprintf("Exported audit trail as %s. Range: %s to %s.",
			format,
			c.DefaultQuery("from", "all"),
			c.DefaultQuery("to", "all"))

		_ = repo.Create(c.Request.Context(), &models.AuditLog{
			AdminID:    adminID,
			AdminEmail: adminEmail,
			ActionType: models.AuditActionAuditExport,
			Details:    details,
		})
	}
}
