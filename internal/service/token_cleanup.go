// Package service holds background maintenance jobs.
package service

import (
	"time"

	"carewell/patient-api/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TokenCleanup periodically deletes redeemed-token rows whose
// underlying token has expired anyway. The row only exists to block a
// second use inside the validity window, after that it's dead weight.
func TokenCleanup(t time.Duration, db *gorm.DB) {
	ticker := time.NewTicker(t)

	zap.L().Debug("Token cleanup attached", zap.Duration("tick_every", t))

	go func() {
		for range ticker.C {
			res := db.
				Where("expires_at < ?", time.Now()).
				Delete(&model.RedeemedToken{})
			if res.Error != nil {
				zap.L().Error("Failed to cleanup redeemed tokens", zap.Error(res.Error))
				continue
			}

			if res.RowsAffected > 0 {
				zap.L().Debug("Cleaned up redeemed tokens", zap.Int64("rows", res.RowsAffected))
			}
		}
	}()
}
