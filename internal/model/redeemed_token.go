package model

import "time"

// RedeemedToken records the jti of an action token that was already
// spent. Tokens stay stateless, this table only blocks a second use
// before the natural expiry.
type RedeemedToken struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	JTI       string `gorm:"uniqueIndex;not null"`
	UserID    string `gorm:"index"`
	Purpose   string
	ExpiresAt time.Time
	CreatedAt time.Time
}
