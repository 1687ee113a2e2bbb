package response

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stemsi/aptify-backend/internal/logger"
)

// ContextKeyRequestID is the Gin context key for the request ID.
const ContextKeyRequestID = "request_id"

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// maxRequestIDLen bounds client-supplied IDs before they reach the logs.
const maxRequestIDLen = 64

// RequestIDMiddleware generates a unique request ID for every request, or
// reuses a reasonable one sent by the client. The ID is also stored in the
// request context for logger.Ctx.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" || len(reqID) > maxRequestIDLen {
			reqID = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, reqID)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), reqID))
		c.Header(HeaderRequestID, reqID)
		c.Next()
	}
}
