package model

import "time"

type Patient struct {
	ID            string `gorm:"primaryKey"`
	FirstName     string `gorm:"not null"`
	LastName      string `gorm:"not null"`
	MiddleInitial string
	DateOfBirth   time.Time `gorm:"not null"`
	Weight        float64
	UserID        string `gorm:"uniqueIndex;not null"`

	Allergies []Allergy `gorm:"foreignKey:PatientID"`
}
