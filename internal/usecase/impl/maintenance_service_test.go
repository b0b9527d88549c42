package impl

import (
	"context"
	"testing"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	mockUsecase "github.com/aimericdrk/ai-fall-guard/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceService_Sweep(t *testing.T) {
	fallEventUC := mockUsecase.NewMockFallEventUsecase(t)
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	svc := NewMaintenanceService(MaintenanceServiceParams{
		FallEventUC:    fallEventUC,
		NotificationUC: notificationUC,
		Logger:         newDiscardLogger(),
	})
	ctx := context.Background()

	fallEventUC.EXPECT().DeleteOldEvents(ctx, testNow).Return(int64(3), nil)
	notificationUC.EXPECT().DeleteOldNotifications(ctx, testNow).Return(int64(5), nil)

	result, err := svc.Sweep(ctx, testNow)

	require.NoError(t, err)
	assert.Equal(t, &entity.SweepResult{DeletedEvents: 3, DeletedNotifications: 5}, result)
}

func TestMaintenanceService_Sweep_ContinuesAfterFailure(t *testing.T) {
	fallEventUC := mockUsecase.NewMockFallEventUsecase(t)
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	svc := NewMaintenanceService(MaintenanceServiceParams{
		FallEventUC:    fallEventUC,
		NotificationUC: notificationUC,
		Logger:         newDiscardLogger(),
	})
	ctx := context.Background()
	sweepErr := errors.New("events collection unavailable")

	fallEventUC.EXPECT().DeleteOldEvents(ctx, testNow).Return(int64(0), sweepErr)
	notificationUC.EXPECT().DeleteOldNotifications(ctx, testNow).Return(int64(4), nil)

	result, err := svc.Sweep(ctx, testNow)

	require.ErrorIs(t, err, sweepErr)
	assert.Equal(t, int64(4), result.DeletedNotifications)
}
