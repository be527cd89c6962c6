package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// RequestIDKey is the context key under which the request ID travels.
type RequestIDKey struct{}

// RequestID tags every request with a unique ID, honoring an incoming
// X-Request-ID header when the client supplies one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}

		c.Set("request_id", reqID)
		c.Request = c.Request.WithContext(SetRequestID(c.Request.Context(), reqID))
		c.Header("X-Request-ID", reqID)

		c.Next()
	}
}

// SetRequestID stores the request ID in the context.
func SetRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, RequestIDKey{}, reqID)
}

// GetRequestID returns the request ID stored in the context, if any.
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	reqID, ok := ctx.Value(RequestIDKey{}).(string)
	if !ok {
		return ""
	}
	return reqID
}

// GetRequestIDFromGin returns the request ID stored in the gin context.
func GetRequestIDFromGin(c *gin.Context) string {
	if c == nil {
		return ""
	}
	reqID, exists := c.Get("request_id")
	if !exists {
		return ""
	}
	if id, ok := reqID.(string); ok {
		return id
	}
	return ""
}

// CORS allows cross-origin calls and short-circuits preflight requests.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RateLimit throttles all routes through a shared token bucket. Requests
// over the limit get a 429 without touching the handler.
func RateLimit(perSecond float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   true,
				"message": "Limite de requisições excedido. Tente novamente em instantes.",
			})
			return
		}
		c.Next()
	}
}

// Logger logs one line per request with method, status and duration.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("%s %s %d %s request_id=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start).Round(time.Millisecond),
			GetRequestIDFromGin(c),
		)
	}
}
