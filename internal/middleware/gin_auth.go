package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GinRequireAuth adapts the net/http session gate to gin for the mutation
// endpoints (401 on missing/expired session).
func GinRequireAuth(auth *AuthMiddleware) gin.HandlerFunc {
	return adapt(auth.RequireAuth)
}

// GinRequireAuthPage adapts the page variant (redirect to login).
func GinRequireAuthPage(auth *AuthMiddleware) gin.HandlerFunc {
	return adapt(auth.RequireAuthPage)
}

func adapt(wrap func(http.Handler) http.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Bridge handler to allow net/http middleware execution
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})

		wrap(next).ServeHTTP(c.Writer, c.Request)

		// If the gate already wrote a response, stop the gin chain.
		if c.Writer.Written() {
			c.Abort()
		}
	}
}
