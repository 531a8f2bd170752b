package model

// Allergy rows are insert-if-absent. The composite unique index is what
// enforces the dedup, application code only pre-filters obvious repeats.
type Allergy struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	PatientID string `gorm:"uniqueIndex:idx_patient_allergy;not null"`
	Name      string `gorm:"uniqueIndex:idx_patient_allergy;not null"`
}
