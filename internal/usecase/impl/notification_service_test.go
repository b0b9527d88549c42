package impl

import (
	"context"
	"testing"
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	domainerrors "github.com/aimericdrk/ai-fall-guard/internal/domain/errors"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/repository"
	mockRepo "github.com/aimericdrk/ai-fall-guard/internal/mocks/repository"
	mockSvc "github.com/aimericdrk/ai-fall-guard/internal/mocks/service"
	"github.com/aimericdrk/ai-fall-guard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          *notificationService
	notificationRepo *mockRepo.MockNotificationRepository
	userRepo         *mockRepo.MockUserRepository
	pushSvc          *mockSvc.MockNotificationService
}

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	pushSvc := mockSvc.NewMockNotificationService(t)

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
		PushSvc:          pushSvc,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	}).(*notificationService)
	svc.now = fixedClock(testNow)

	return notificationServiceFixtures{
		service:          svc,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		pushSvc:          pushSvc,
	}
}

func TestNotificationService_CreateFallNotification_Sent(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	var stored *entity.Notification

	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.User{ID: "u1", DeviceTokens: []string{"tok-1"}}, nil)
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, n *entity.Notification) {
			assert.Equal(t, entity.NotificationStatusPending, n.Status)
			n.ID = "n1"
			stored = n
		}).
		Return(nil)
	fx.pushSvc.EXPECT().
		SendBatchNotification(ctx, []string{"tok-1"}, "🚨 Fall Detected!", mock.Anything, mock.Anything).
		Return(1, 0, nil, nil)
	fx.notificationRepo.EXPECT().MarkSent(ctx, "n1", testNow).Return(nil)

	notification, err := fx.service.CreateFallNotification(ctx, &usecase.CreateFallNotificationInput{
		UserID: "u1",
		Type:   entity.NotificationTypeFallDetected,
		Data:   map[string]any{"confidence": 0.876, "angle": 72.6, "velocity": 1.234},
	})

	require.NoError(t, err)
	assert.Same(t, stored, notification)
	assert.True(t, notification.IsEmergency)
	assert.Equal(t, entity.NotificationStatusSent, notification.Status)
	assert.Equal(t, testNow, *notification.SentAt)
	assert.Equal(t, []string{"tok-1"}, notification.DeviceTokens)
	assert.Equal(t, "A fall has been detected with 88% confidence. Body angle: 73°, Velocity: 1.23 m/s", notification.Message)
}

func TestNotificationService_CreateFallNotification_PushFailureIncrementsRetry(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(nil, repository.ErrUserNotFound)
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, n *entity.Notification) { n.ID = "n1" }).
		Return(nil)
	fx.pushSvc.EXPECT().
		SendBatchNotification(ctx, []string{}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("provider unavailable"))
	fx.notificationRepo.EXPECT().IncrementRetry(ctx, "n1").Return(nil)

	notification, err := fx.service.CreateFallNotification(ctx, &usecase.CreateFallNotificationInput{UserID: "u1"})

	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusPending, notification.Status)
	assert.Equal(t, 1, notification.RetryCount)
	assert.Nil(t, notification.SentAt)
	assert.Equal(t, entity.NotificationTypeFallDetected, notification.Type)
}

func TestNotificationService_CreateFallNotification_RejectsUnknownType(t *testing.T) {
	fx := createTestNotificationService(t)

	_, err := fx.service.CreateFallNotification(context.Background(), &usecase.CreateFallNotificationInput{
		UserID: "u1",
		Type:   entity.NotificationType("BOGUS"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_AcknowledgeAndRead_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().Acknowledge(ctx, "missing", testNow).Return(nil, repository.ErrNotificationNotFound)
	fx.notificationRepo.EXPECT().MarkRead(ctx, "missing", testNow).Return(nil, repository.ErrNotificationNotFound)

	_, err := fx.service.Acknowledge(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)

	_, err = fx.service.MarkAsRead(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_DeleteOldNotifications_UsesRetention(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().DeleteAcknowledgedBefore(ctx, testNow.Add(-30*24*time.Hour)).Return(int64(7), nil)

	deleted, err := fx.service.DeleteOldNotifications(ctx, testNow)

	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
}

func TestFallMessage(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want string
	}{
		{
			name: "floats",
			data: map[string]any{"confidence": 0.5, "angle": 45.4, "velocity": 2.0},
			want: "A fall has been detected with 50% confidence. Body angle: 45°, Velocity: 2.00 m/s",
		},
		{
			name: "integers",
			data: map[string]any{"confidence": 1, "angle": int32(90), "velocity": int64(3)},
			want: "A fall has been detected with 100% confidence. Body angle: 90°, Velocity: 3.00 m/s",
		},
		{
			name: "ties round up",
			data: map[string]any{"confidence": 0.125, "angle": -2.5, "velocity": 0.5},
			want: "A fall has been detected with 13% confidence. Body angle: -2°, Velocity: 0.50 m/s",
		},
		{
			name: "missing values",
			data: map[string]any{},
			want: "A fall has been detected with 0% confidence. Body angle: 0°, Velocity: 0.00 m/s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fallMessage(tt.data))
		})
	}
}
