package middleware

import (
	"errors"
	"net/http"

	"carewell/patient-api/internal/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewSessionMiddleware restores the session from the auth_token cookie
// and re-resolves the user through the injected loader, so a deleted
// account can't keep riding a still-valid cookie. Handlers behind it
// can rely on "session", "requestID" and "userID" being set.
func NewSessionMiddleware(secret []byte, loadUser auth.UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		tokenStr, err := c.Cookie("auth_token")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Please log in to continue",
				"requestID": requestID,
			})
			return
		}

		sess, err := auth.ParseSession(tokenStr, secret)
		if err != nil || !sess.Valid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Session invalid or expired. Please log in again",
				"requestID": requestID,
			})
			return
		}

		if _, err := loadUser(c.Request.Context(), sess.UserID); err != nil {
			if errors.Is(err, auth.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":     "Session invalid or expired. Please log in again",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to load session user", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("session", sess)
		c.Set("userID", sess.UserID)
		c.Next()
	}
}
