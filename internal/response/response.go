package response

import (
	"github.com/gin-gonic/gin"
)

// Status values carried by every envelope.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorBody is the error envelope. Status and Message are what browser
// clients read; Code and Fields identify the failure programmatically.
type ErrorBody struct {
	Status    string            `json:"status"`
	Code      ErrCode           `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// ────────────────────────────────────────────────────────────────────────────
// Helper builders
// ────────────────────────────────────────────────────────────────────────────

// Success sends a JSON object made of data plus "status": "success".
func Success(c *gin.Context, statusCode int, data gin.H) {
	body := make(gin.H, len(data)+1)
	for k, v := range data {
		body[k] = v
	}
	body["status"] = StatusSuccess
	c.JSON(statusCode, body)
}

// Fail sends an error response with an error code and no field-level details.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, buildError(c, code, nil))
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, buildError(c, code, fields))
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, buildError(c, code, nil))
}

// ────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ────────────────────────────────────────────────────────────────────────────

func buildError(c *gin.Context, code ErrCode, fields map[string]string) ErrorBody {
	return ErrorBody{
		Status:    StatusError,
		Code:      code,
		Message:   GetMessage(code),
		Fields:    fields,
		RequestID: c.GetString(ContextKeyRequestID),
	}
}
