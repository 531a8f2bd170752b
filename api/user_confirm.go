package api

import (
	"net/http"

	"carewell/patient-api/internal/auth"

	"github.com/gin-gonic/gin"
)

// UserConfirm handles the emailed confirmation link. The token is
// checked against the session user, so the route sits behind the
// session middleware.
func (a *API) UserConfirm(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	sess := c.MustGet("session").(auth.Session)

	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No confirmation token provided",
			"requestID": requestID,
		})
		return
	}

	result, err := a.d.Auth.ConfirmRegistration(c.Request.Context(), sess, token)
	if err != nil {
		failFlow(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   result.Message,
		"redirect":  result.RedirectTo,
		"requestID": requestID,
	})
}
