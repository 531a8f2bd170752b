// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	autoMigrate    = pflag.Bool("auto-migrate", true, "Runs database migrations on startup")
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDrivers   = []string{"sqlite", "postgres"}
)

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.domain", "host_domain")
	v.BindEnv("host.ssl.enabled", "host_ssl_enabled")

	v.BindEnv("db.driver", "db_driver")
	v.BindEnv("db.path", "db_path")
	v.BindEnv("db.dsn", "db_dsn")

	v.BindEnv("jwt.secret", "jwt_secret")

	v.BindEnv("auth.session_hours", "auth_session_hours")
	v.BindEnv("auth.token_minutes", "auth_token_minutes")
	v.BindEnv("auth.default_landing", "auth_default_landing")

	v.BindEnv("mail.host", "mail_host")
	v.BindEnv("mail.port", "mail_port")
	v.BindEnv("mail.sender", "mail_sender")
	v.BindEnv("mail.password", "mail_password")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.domain", "localhost")
	v.SetDefault("host.ssl.enabled", false)

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "database.db")

	v.SetDefault("auth.session_hours", 24)
	v.SetDefault("auth.token_minutes", 60)
	v.SetDefault("auth.default_landing", "/profile")

	v.SetDefault("mail.port", 587)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); ok {
			return errors.New("config.toml file is missing")
		}

		return fmt.Errorf("failed to read config file, %w", err)
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if !slices.Contains(validDrivers, v.GetString("db.driver")) {
		return errors.New("db.driver must be either sqlite or postgres")
	}

	if v.GetString("db.driver") == "postgres" && v.GetString("db.dsn") == "" {
		return errors.New("no db.dsn provided for the postgres driver")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	if v.GetInt("auth.token_minutes") <= 0 {
		return errors.New("auth.token_minutes must be bigger than 0")
	}

	if v.GetInt("auth.session_hours") <= 0 {
		return errors.New("auth.session_hours must be bigger than 0")
	}

	// The logger isn't built yet at this point, so plain stdout it is.
	if v.GetString("mail.host") == "" || v.GetString("mail.sender") == "" {
		fmt.Println("WARNING: No mail.host or mail.sender configured, confirmation and reset emails will fail to send")
	}

	v.Set("auto_migrate", *autoMigrate)

	return nil
}
