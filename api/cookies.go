package api

import (
	"carewell/patient-api/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

func (a *API) setSessionCookies(c *gin.Context, sess auth.Session) error {
	tokenStr, err := auth.SignSession(sess, a.d.SessionSecret, a.d.SessionTTL)
	if err != nil {
		return err
	}

	maxAge := int(a.d.SessionTTL.Seconds())
	ssl := viper.GetBool("host.ssl.enabled")

	c.SetCookie("auth_token", tokenStr, maxAge, "/", "", ssl, true)
	c.SetCookie("logged_in", "1", maxAge, "/", "", ssl, false)

	return nil
}

func (a *API) clearSessionCookies(c *gin.Context) {
	ssl := viper.GetBool("host.ssl.enabled")

	c.SetCookie("auth_token", "", -1, "/", "", ssl, true)
	c.SetCookie("logged_in", "", -1, "/", "", ssl, false)
}
