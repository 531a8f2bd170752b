package api

import (
	"net/http"

	"carewell/patient-api/internal/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type resetPasswordBody struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (a *API) UserResetPassword(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data resetPasswordBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	result, err := a.d.Auth.ResetPassword(c.Request.Context(), auth.ResetPasswordInput{
		Email:    data.Email,
		Token:    data.Token,
		Password: data.Password,
	})
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
