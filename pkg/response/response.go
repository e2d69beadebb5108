package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/bazarhub/admin-api/pkg/errors"
)

// Ack is the success contract for privileged admin actions. Idempotent is
// set only when the request was recognised as a replay or a no-op.
type Ack struct {
	OK         bool `json:"ok"`
	Idempotent bool `json:"idempotent,omitempty"`
}

// Envelope wraps data payloads for read endpoints.
type Envelope struct {
	Data interface{} `json:"data,omitempty"`
	Meta interface{} `json:"meta,omitempty"`
}

// OK acknowledges a committed action.
func OK(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, Ack{OK: true})
}

// Idempotent acknowledges a replayed or no-op action. Replays are successes,
// never errors, so caller-side retries stay safe to automate.
func Idempotent(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, Ack{OK: true, Idempotent: true})
}

// JSON sends a data payload for read endpoints.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, Envelope{Data: data})
}

// Error sends an error response with the status carried by the domain error.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
