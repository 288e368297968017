package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gratitude-be/internal/jwt"
	"gratitude-be/internal/models"
)

const sessionKey = "session"

// AuthMiddleware validates the Bearer session token and stores an explicit
// Session value on the context. The superuser flag is derived here, by exact
// string comparison with the configured name, and nowhere else.
func AuthMiddleware(jwtService *jwt.JWTService, superuserName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Missing or malformed Authorization header",
			})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session token",
			})
			c.Abort()
			return
		}

		c.Set(sessionKey, models.Session{
			UserID:      claims.Username,
			IsSuperuser: superuserName != "" && claims.Username == superuserName,
		})

		c.Next()
	}
}

// RequireSuperuser rejects any session that is not the configured superuser.
// Routes behind it must still pass the session to AdminService, which checks
// the flag again.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSession(c)
		if !ok || !sess.IsSuperuser {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Superuser access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession returns the Session stored by AuthMiddleware
func GetSession(c *gin.Context) (models.Session, bool) {
	value, exists := c.Get(sessionKey)
	if !exists {
		return models.Session{}, false
	}
	sess, ok := value.(models.Session)
	return sess, ok
}
