package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GinRequireAuth adapts the net/http AuthMiddleware to Gin, so the
// session check stays framework-agnostic and testable on its own.
func GinRequireAuth(auth *AuthMiddleware) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Bridge handler: swapping in the wrapped request carries the
		// identity-bearing context into the Gin chain.
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})

		auth.RequireAuth(next).ServeHTTP(c.Writer, c.Request)

		// If the middleware already wrote a rejection, stop the chain.
		if c.Writer.Written() {
			c.Abort()
			return
		}
	}
}
