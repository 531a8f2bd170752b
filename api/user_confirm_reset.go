package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserConfirmReset validates an emailed {email, token} reset pair and
// forwards the browser to the reset form only when it checks out.
func (a *API) UserConfirmReset(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	email := c.Query("email")
	token := c.Query("token")
	if email == "" || token == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Missing email or token",
			"requestID": requestID,
		})
		return
	}

	result, err := a.d.Auth.ConfirmPasswordReset(c.Request.Context(), email, token)
	if err != nil {
		failFlow(c, requestID, err)
		return
	}

	c.Redirect(http.StatusFound, result.RedirectTo)
}
