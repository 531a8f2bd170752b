// Package api contains all endpoints available
package api

import (
	"carewell/patient-api/db"
	"carewell/patient-api/internal"
	"carewell/patient-api/internal/auth"
	"carewell/patient-api/internal/mail"
	"carewell/patient-api/internal/service"
	"carewell/patient-api/pkg/middleware"
	"carewell/patient-api/pkg/security"
	"fmt"
	"time"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

type API struct {
	Router *gin.Engine
	d      *internal.Deps
}

// NewRouter wires the full production stack: config-driven database,
// SMTP mailer and background cleanup. Tests use New with their own deps.
func NewRouter() (*API, error) {
	makeLogger()

	conn, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	secret := []byte(viper.GetString("jwt.secret"))
	tokenTTL := time.Minute * time.Duration(viper.GetInt("auth.token_minutes"))
	sessionTTL := time.Hour * time.Duration(viper.GetInt("auth.session_hours"))

	scheme := "http"
	if viper.GetBool("host.ssl.enabled") {
		scheme = "https"
	}

	hasher := security.NewHasher()
	tokens := security.NewTokenIssuer(secret, tokenTTL)
	mailer := mail.NewSMTP()

	d := &internal.Deps{
		DB:     conn,
		Hasher: hasher,
		Tokens: tokens,
		Mailer: mailer,
		Auth: auth.NewService(conn, hasher, tokens, mailer, auth.Config{
			BaseURL:        fmt.Sprintf("%s://%s", scheme, viper.GetString("host.domain")),
			DefaultLanding: viper.GetString("auth.default_landing"),
		}),
		SessionSecret: secret,
		SessionTTL:    sessionTTL,
	}

	service.TokenCleanup(time.Hour, conn)

	return New(d)
}

// New builds the router around an already-assembled dependency set.
func New(d *internal.Deps) (*API, error) {
	a := &API{d: d}

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	session := middleware.NewSessionMiddleware(d.SessionSecret, d.Auth.LoadUser)

	main := router.Group("/api")
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)

		// HEAD /api/validate		-> Validates a session cookie
		main.HEAD("/validate", session, a.Validate)
	}

	users := main.Group("/users", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/users 		-> Registers a new user with their patient record
		users.POST("", a.UserRegister)

		// POST /api/users/login 	-> Logs in a user and sets the session cookie
		users.POST("/login", a.UserLogin)

		// GET /api/users/confirm	-> Confirms the email of the logged-in user
		users.GET("/confirm", session, a.UserConfirm)

		// POST /api/users/logout	-> Clears the session cookie
		users.POST("/logout", session, a.UserLogout)

		// POST /api/users/forgot_password	-> Mails a password reset link
		users.POST("/forgot_password", a.UserForgotPassword)

		// GET /api/users/confirm_reset		-> Validates an emailed reset link
		users.GET("/confirm_reset", a.UserConfirmReset)

		// POST /api/users/reset_password	-> Sets a new password from a reset link
		users.POST("/reset_password", a.UserResetPassword)

		// GET /api/users/me		-> Returns the patient profile of the session user
		users.GET("/me", session, cachePerUser(30), a.UserMe)
	}

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

// cachePerUser caches responses keyed on the session user as well as
// the URI. Keying on the URI alone would hand one user's cached
// profile to everybody else sharing the route.
func cachePerUser(sec int) gin.HandlerFunc {
	return cache.Cache(store, time.Second*time.Duration(sec),
		cache.WithCacheStrategyByRequest(func(c *gin.Context) (bool, cache.Strategy) {
			return true, cache.Strategy{
				CacheKey: c.GetString("userID") + ":" + c.Request.RequestURI,
			}
		}),
	)
}
