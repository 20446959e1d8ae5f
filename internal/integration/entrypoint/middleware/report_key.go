// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerror "github.com/study-cards/backend/internal/domain/error"
	"github.com/study-cards/backend/internal/integration/entrypoint/dto"
)

// ReportKeyMiddleware guards the reporting endpoints with a static bearer
// key. When no key is configured the middleware is a passthrough; main
// logs that mode at startup so it never happens silently.
type ReportKeyMiddleware struct {
	apiKey string
}

// NewReportKeyMiddleware creates a new report key middleware instance.
func NewReportKeyMiddleware(apiKey string) *ReportKeyMiddleware {
	return &ReportKeyMiddleware{
		apiKey: apiKey,
	}
}

// Enforce returns a Gin middleware handler that checks the bearer key.
// Every failure mode returns the same 401 body so callers cannot probe
// whether a key exists, is malformed or simply wrong.
func (m *ReportKeyMiddleware) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(m.apiKey)) != 1 {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or missing report key",
				Code:  string(domainerror.ErrCodeInvalidReportKey),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
