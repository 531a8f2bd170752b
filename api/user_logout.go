package api

import (
	"net/http"

	"carewell/patient-api/internal/auth"

	"github.com/gin-gonic/gin"
)

func (a *API) UserLogout(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	sess := c.MustGet("session").(auth.Session)

	result := a.d.Auth.Logout(sess)
	a.clearSessionCookies(c)

	c.JSON(http.StatusOK, gin.H{
		"message":   result.Message,
		"redirect":  result.RedirectTo,
		"requestID": requestID,
	})
}
