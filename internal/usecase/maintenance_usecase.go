package usecase

import (
	"context"
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
)

// MaintenanceUsecase runs the retention sweeps.
type MaintenanceUsecase interface {
	// Sweep deletes old acknowledged events and notifications as of now.
	Sweep(ctx context.Context, now time.Time) (*entity.SweepResult, error)
}
