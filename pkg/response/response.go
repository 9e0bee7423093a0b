package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/takwin-app/landing-api/pkg/errors"
)

// JSON writes a raw JSON payload. The public wire contract for this API is
// flat: listings are bare arrays and mutations return {ok:true,...} objects.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// OK responds with HTTP 200 and {ok:true} merged with any extra fields.
func OK(c *gin.Context, extra gin.H) {
	body := gin.H{"ok": true}
	for k, v := range extra {
		body[k] = v
	}
	JSON(c, http.StatusOK, body)
}

// Error sends {error: message} using the status carried by the typed error.
// Wrapped causes are included so storage failures surface their raw message.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"error": appErr.Error()})
}
