// Package db contains things related to the relational store
package db

import (
	"carewell/patient-api/internal/model"
	"fmt"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the configured database. TranslateError is on so that the
// unique index on user emails surfaces as gorm.ErrDuplicatedKey, which
// is the authoritative guard against concurrent duplicate registrations.
func New() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch viper.GetString("db.driver") {
	case "postgres":
		dialector = postgres.Open(viper.GetString("db.dsn"))
	default:
		dialector = sqlite.Open(viper.GetString("db.path"))
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	if viper.GetBool("auto_migrate") {
		err = db.AutoMigrate(model.User{}, model.Patient{}, model.Allergy{}, model.RedeemedToken{})
		if err != nil {
			return nil, fmt.Errorf("failed to automigrate tables, %w", err)
		}
	}

	return db, nil
}
