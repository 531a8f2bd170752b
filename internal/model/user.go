// Package model contains the gorm models shared across the application
package model

import "time"

type User struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Confirmed    bool   `gorm:"default:false"`
	CreatedAt    time.Time

	Patient Patient `gorm:"foreignKey:UserID"`
}
