package api

import (
	"net/http"

	"carewell/patient-api/internal/auth"
	"carewell/patient-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserMe returns the patient profile behind the session. This is what
// the profile landing page loads first.
func (a *API) UserMe(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	sess := c.MustGet("session").(auth.Session)

	var patient model.Patient
	err := a.d.DB.
		Preload("Allergies").
		Where("id = ?", sess.PatientID).
		First(&patient).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch patient profile", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	user, err := a.d.Auth.LoadUser(c.Request.Context(), sess.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch session user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	allergies := make([]string, 0, len(patient.Allergies))
	for _, al := range patient.Allergies {
		allergies = append(allergies, al.Name)
	}

	c.JSON(http.StatusOK, gin.H{
		"email":         user.Email,
		"confirmed":     user.Confirmed,
		"firstName":     patient.FirstName,
		"lastName":      patient.LastName,
		"middleInitial": patient.MiddleInitial,
		"dateOfBirth":   patient.DateOfBirth.Format("2006-01-02"),
		"weight":        patient.Weight,
		"allergies":     allergies,
	})
}
