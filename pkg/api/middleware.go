package api

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = "requestID"

// RequestID attaches a unique ID to each request for log correlation. An
// incoming X-Request-ID header is honoured so upstream proxies can thread
// their own IDs through.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// RequestLogger logs end-to-end request duration, status and response size
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("request handled",
			zap.String("requestID", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Int("bytes", c.Writer.Size()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// PassphraseAuth gates requests on the shared passphrase from the
// X-Passphrase header. An empty expected passphrase disables the gate,
// which is only sensible for local development.
func PassphraseAuth(passphrase string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if passphrase == "" {
			c.Next()
			return
		}

		supplied := c.GetHeader("X-Passphrase")
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(passphrase)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Next()
	}
}
