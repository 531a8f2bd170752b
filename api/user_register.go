package api

import (
	"net/http"

	"carewell/patient-api/internal/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerBody struct {
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	MiddleInitial string  `json:"middleInitial"`
	DateOfBirth   string  `json:"dateOfBirth"`
	Weight        float64 `json:"weight"`
	Allergies     string  `json:"allergies"`
}

func (a *API) UserRegister(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data registerBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	sess, result, err := a.d.Auth.Register(c.Request.Context(), auth.RegisterInput{
		Email:         data.Email,
		Password:      data.Password,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		MiddleInitial: data.MiddleInitial,
		DateOfBirth:   data.DateOfBirth,
		Weight:        data.Weight,
		Allergies:     data.Allergies,
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
		"message":   result.Message,
		"redirect":  result.RedirectTo,
	})
}
