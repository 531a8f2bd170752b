package api

import (
	"net/http"

	"carewell/patient-api/internal/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) UserLogin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	sess, result, err := a.d.Auth.Login(c.Request.Context(), auth.LoginInput{
		Email:    data.Email,
		Password: data.Password,
		Next:     c.Query("next"),
	})
	if err != nil {
		failFlow(c, requestID, err)
		return
	}

	if err := a.setSessionCookies(c, sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to sign session", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userID":    sess.UserID,
		"patientID": sess.PatientID,
		"redirect":  result.RedirectTo,
	})
}
