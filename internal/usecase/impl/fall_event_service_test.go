package impl

import (
	"context"
	"testing"
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	domainerrors "github.com/aimericdrk/ai-fall-guard/internal/domain/errors"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/repository"
	mockRepo "github.com/aimericdrk/ai-fall-guard/internal/mocks/repository"
	mockUsecase "github.com/aimericdrk/ai-fall-guard/internal/mocks/usecase"
	"github.com/aimericdrk/ai-fall-guard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fallEventServiceFixtures struct {
	service        *fallEventService
	fallEventRepo  *mockRepo.MockFallEventRepository
	notificationUC *mockUsecase.MockNotificationUsecase
}

func createTestFallEventService(t *testing.T) fallEventServiceFixtures {
	fallEventRepo := mockRepo.NewMockFallEventRepository(t)
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)

	svc := NewFallEventService(FallEventServiceParams{
		FallEventRepo:  fallEventRepo,
		NotificationUC: notificationUC,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	}).(*fallEventService)
	svc.now = fixedClock(testNow)

	return fallEventServiceFixtures{
		service:        svc,
		fallEventRepo:  fallEventRepo,
		notificationUC: notificationUC,
	}
}

func TestFallEventService_CreateFallEvent_RaisesOneNotification(t *testing.T) {
	fx := createTestFallEventService(t)
	ctx := context.Background()
	input := &usecase.CreateFallEventInput{
		UserID:     "u1",
		Confidence: 0.9,
		Angle:      80,
		Velocity:   1.5,
		Location:   &entity.GeoLocation{Latitude: 48.85, Longitude: 2.35},
	}

	fx.fallEventRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.FallEvent")).
		Run(func(_ context.Context, event *entity.FallEvent) { event.ID = "e1" }).
		Return(nil)
	fx.notificationUC.EXPECT().
		CreateFallNotification(ctx, &usecase.CreateFallNotificationInput{
			UserID: "u1",
			Type:   entity.NotificationTypeFallDetected,
			Data: map[string]any{
				"fallEventId": "e1",
				"confidence":  0.9,
				"angle":       80.0,
				"velocity":    1.5,
				"timestamp":   testNow.Format(time.RFC3339),
			},
		}).
		Return(&entity.Notification{ID: "n1"}, nil).
		Once()

	event, err := fx.service.CreateFallEvent(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "e1", event.ID)
	assert.True(t, event.IsActive)
	assert.False(t, event.IsAcknowledged)
	assert.Equal(t, []string{}, event.ImageURLs)
}

func TestFallEventService_CreateFallEvent_SwallowsNotificationFailure(t *testing.T) {
	fx := createTestFallEventService(t)
	ctx := context.Background()

	fx.fallEventRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.notificationUC.EXPECT().CreateFallNotification(ctx, mock.Anything).Return(nil, errors.New("mongo down"))

	event, err := fx.service.CreateFallEvent(ctx, &usecase.CreateFallEventInput{UserID: "u1", Confidence: 0.7})

	require.NoError(t, err)
	assert.NotNil(t, event)
}

func TestFallEventService_Acknowledge(t *testing.T) {
	fx := createTestFallEventService(t)
	ctx := context.Background()
	ack := entity.FallAcknowledgement{IsFalseAlarm: true, FalseAlarmReason: "dropped phone", AcknowledgedAt: testNow}

	fx.fallEventRepo.EXPECT().Acknowledge(ctx, "e1", ack).Return(&entity.FallEvent{ID: "e1", IsAcknowledged: true, IsFalseAlarm: true}, nil)
	fx.fallEventRepo.EXPECT().Acknowledge(ctx, "missing", mock.Anything).Return(nil, repository.ErrFallEventNotFound)

	event, err := fx.service.Acknowledge(ctx, "e1", &usecase.AcknowledgeFallEventInput{IsFalseAlarm: true, FalseAlarmReason: "dropped phone"})
	require.NoError(t, err)
	assert.True(t, event.IsAcknowledged)

	_, err = fx.service.Acknowledge(ctx, "missing", &usecase.AcknowledgeFallEventInput{})
	assert.ErrorIs(t, err, domainerrors.ErrFallEventNotFound)
}

func TestFallEventService_FindOne_NotFound(t *testing.T) {
	fx := createTestFallEventService(t)
	ctx := context.Background()

	fx.fallEventRepo.EXPECT().FindByID(ctx, "nope").Return(nil, repository.ErrFallEventNotFound)

	_, err := fx.service.FindOne(ctx, "nope")

	assert.ErrorIs(t, err, domainerrors.ErrFallEventNotFound)
}

func TestFallEventService_GetRecentStats(t *testing.T) {
	tests := []struct {
		name      string
		days      int
		wantSince time.Time
		wantErr   bool
	}{
		{name: "default window", days: 0, wantSince: testNow.AddDate(0, 0, -30)},
		{name: "one day", days: 1, wantSince: testNow.AddDate(0, 0, -1)},
		{name: "max window", days: 365, wantSince: testNow.AddDate(0, 0, -365)},
		{name: "negative", days: -3, wantErr: true},
		{name: "too wide", days: 366, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestFallEventService(t)
			ctx := context.Background()

			if tt.wantErr {
				_, err := fx.service.GetRecentStats(ctx, "u1", tt.days)
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

				return
			}

			fx.fallEventRepo.EXPECT().StatsSince(ctx, "u1", tt.wantSince).Return(&entity.FallStats{}, nil)

			stats, err := fx.service.GetRecentStats(ctx, "u1", tt.days)
			require.NoError(t, err)
			assert.Equal(t, &entity.FallStats{}, stats)
		})
	}
}

func TestFallEventService_DeleteOldEvents_UsesRetention(t *testing.T) {
	fx := createTestFallEventService(t)
	ctx := context.Background()

	fx.fallEventRepo.EXPECT().DeleteAcknowledgedBefore(ctx, testNow.Add(-90*24*time.Hour)).Return(int64(2), nil)

	deleted, err := fx.service.DeleteOldEvents(ctx, testNow)

	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

// The real notification service is wired in to check the whole fall alert flow.
func TestFallEventService_CreateFallEvent_NotificationGoesFromPendingToSent(t *testing.T) {
	notificationFx := createTestNotificationService(t)
	fallEventRepo := mockRepo.NewMockFallEventRepository(t)
	svc := NewFallEventService(FallEventServiceParams{
		FallEventRepo:  fallEventRepo,
		NotificationUC: notificationFx.service,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})
	ctx := context.Background()
	var statuses []entity.NotificationStatus

	fallEventRepo.EXPECT().
		Create(ctx, mock.Anything).
		Run(func(_ context.Context, event *entity.FallEvent) { event.ID = "e1" }).
		Return(nil)
	notificationFx.userRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.User{ID: "u1"}, nil)
	notificationFx.notificationRepo.EXPECT().
		Create(ctx, mock.Anything).
		Run(func(_ context.Context, n *entity.Notification) {
			assert.True(t, n.IsEmergency)
			statuses = append(statuses, n.Status)
			n.ID = "n1"
		}).
		Return(nil).
		Once()
	notificationFx.pushSvc.EXPECT().SendBatchNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(0, 0, nil, nil)
	notificationFx.notificationRepo.EXPECT().
		MarkSent(ctx, "n1", testNow).
		Run(func(context.Context, string, time.Time) {
			statuses = append(statuses, entity.NotificationStatusSent)
		}).
		Return(nil)

	_, err := svc.CreateFallEvent(ctx, &usecase.CreateFallEventInput{UserID: "u1", Confidence: 0.95})

	require.NoError(t, err)
	assert.Equal(t, []entity.NotificationStatus{entity.NotificationStatusPending, entity.NotificationStatusSent}, statuses)
}
