package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/aptify-backend/internal/logger"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccessAddsStatus(t *testing.T) {
	r := newEngine()
	r.GET("/", func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"questions": []string{"q"}, "status": "overridden"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, []any{"q"}, body["questions"])
}

func TestFailEnvelope(t *testing.T) {
	r := newEngine()
	r.GET("/plain", func(c *gin.Context) { Fail(c, http.StatusInternalServerError, ErrInternal) })
	r.GET("/fields", func(c *gin.Context) {
		FailWithFields(c, http.StatusBadRequest, ErrValidation, map[string]string{"quiz_type": "too long"})
	})
	var nextRan bool
	r.GET("/abort", func(c *gin.Context) {
		AbortFail(c, http.StatusNotFound, ErrNotFound)
	}, func(c *gin.Context) {
		nextRan = true
		c.String(http.StatusOK, "next handler")
	})

	tests := []struct {
		path   string
		status int
		code   ErrCode
		fields bool
	}{
		{"/plain", http.StatusInternalServerError, ErrInternal, false},
		{"/fields", http.StatusBadRequest, ErrValidation, true},
		{"/abort", http.StatusNotFound, ErrNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			body := decode(t, w)
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, string(tt.code), body["code"])
			assert.Equal(t, GetMessage(tt.code), body["message"])
			assert.Equal(t, w.Header().Get(HeaderRequestID), body["request_id"])
			_, hasFields := body["fields"]
			assert.Equal(t, tt.fields, hasFields)
		})
	}
	assert.False(t, nextRan, "AbortFail must stop the handler chain")
}

func TestRequestIDMiddleware(t *testing.T) {
	r := newEngine()
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = logger.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		id := w.Header().Get(HeaderRequestID)
		assert.Len(t, id, 36)
		assert.Equal(t, id, seen)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "client-id")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "client-id", w.Header().Get(HeaderRequestID))
		assert.Equal(t, "client-id", seen)
	})

	t.Run("oversized replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, strings.Repeat("x", 100))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Len(t, w.Header().Get(HeaderRequestID), 36)
	})
}

func TestGetMessageDefault(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred.", GetMessage(ErrCode("SOMETHING_ELSE")))
}
