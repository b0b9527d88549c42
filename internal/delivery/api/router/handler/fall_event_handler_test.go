package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	domainerrors "github.com/aimericdrk/ai-fall-guard/internal/domain/errors"
	mockUC "github.com/aimericdrk/ai-fall-guard/internal/mocks/usecase"
	"github.com/aimericdrk/ai-fall-guard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupFallEventHandler(t *testing.T) (*echo.Echo, *mockUC.MockFallEventUsecase) {
	fallEventUC := mockUC.NewMockFallEventUsecase(t)
	h := NewFallEventHandler(FallEventHandlerParams{FallEventUC: fallEventUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/fall-detection", asCaller(testIdentity))
	g.POST("/events", h.CreateFallEvent)
	g.GET("/events", h.ListFallEvents)
	g.GET("/events/:id", h.GetFallEvent)
	g.POST("/events/:id/acknowledge", h.AcknowledgeFallEvent)
	g.GET("/stats", h.GetStats)

	return e, fallEventUC
}

func TestFallEventHandler_CreateFallEvent(t *testing.T) {
	e, fallEventUC := setupFallEventHandler(t)

	fallEventUC.EXPECT().CreateFallEvent(mock.Anything, mock.MatchedBy(func(in *usecase.CreateFallEventInput) bool {
		return in.UserID == testUserID &&
			in.Confidence == 0.85 &&
			in.Angle == 72 &&
			in.Velocity == 1.4 &&
			in.Location != nil && in.Location.Latitude == 48.85 &&
			in.DeviceInfo != nil && in.DeviceInfo.DeviceID == "cam-1"
	})).Return(&entity.FallEvent{ID: "evt-1", UserID: testUserID, Confidence: 0.85}, nil)

	body := `{"userId":"` + testUserID + `","confidence":0.85,"angle":72,"velocity":1.4,` +
		`"location":{"latitude":48.85,"longitude":2.35},"deviceInfo":{"deviceId":"cam-1","deviceType":"camera","appVersion":"1.0"}}`
	rec := doRequest(e, http.MethodPost, "/fall-detection/events", body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)

	var event entity.FallEvent
	require.NoError(t, json.Unmarshal(env.Data, &event))
	assert.Equal(t, "evt-1", event.ID)
}

func TestFallEventHandler_CreateFallEvent_ZeroConfidenceAccepted(t *testing.T) {
	e, fallEventUC := setupFallEventHandler(t)

	fallEventUC.EXPECT().CreateFallEvent(mock.Anything, mock.MatchedBy(func(in *usecase.CreateFallEventInput) bool {
		return in.Confidence == 0
	})).Return(&entity.FallEvent{ID: "evt-2"}, nil)

	rec := doRequest(e, http.MethodPost, "/fall-detection/events",
		`{"userId":"`+testUserID+`","confidence":0,"angle":0,"velocity":0}`)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestFallEventHandler_CreateFallEvent_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "confidence above one", body: `{"userId":"u","confidence":1.5,"angle":1,"velocity":1}`},
		{name: "confidence missing", body: `{"userId":"u","angle":1,"velocity":1}`},
		{name: "user missing", body: `{"confidence":0.5,"angle":1,"velocity":1}`},
		{name: "latitude out of range", body: `{"userId":"u","confidence":0.5,"angle":1,"velocity":1,"location":{"latitude":91,"longitude":0}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := setupFallEventHandler(t)

			rec := doRequest(e, http.MethodPost, "/fall-detection/events", tt.body)

			requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		})
	}
}

func TestFallEventHandler_CreateFallEvent_ForeignUserIsAccepted(t *testing.T) {
	e, fallEventUC := setupFallEventHandler(t)

	fallEventUC.EXPECT().CreateFallEvent(mock.Anything, mock.MatchedBy(func(in *usecase.CreateFallEventInput) bool {
		return in.UserID == "someone-else"
	})).Return(&entity.FallEvent{ID: "evt-3", UserID: "someone-else"}, nil)

	rec := doRequest(e, http.MethodPost, "/fall-detection/events",
		`{"userId":"someone-else","confidence":0.9,"angle":80,"velocity":2}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestFallEventHandler_ListFallEvents(t *testing.T) {
	e, fallEventUC := setupFallEventHandler(t)

	fallEventUC.EXPECT().FindAll(mock.Anything, testUserID).
		Return([]*entity.FallEvent{{ID: "b"}, {ID: "a"}}, nil)

	rec := doRequest(e, http.MethodGet, "/fall-detection/events", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var events []entity.FallEvent
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &events))
	require.Len(t, events, 2)
	assert.Equal(t, "b", events[0].ID)
}

func TestFallEventHandler_GetFallEvent_NotFound(t *testing.T) {
	e, fallEventUC := setupFallEventHandler(t)

	fallEventUC.EXPECT().FindOne(mock.Anything, "missing").
		Return(nil, errors.Wrap(domainerrors.ErrFallEventNotFound, "find fall event"))

	rec := doRequest(e, http.MethodGet, "/fall-detection/events/missing", "")

	requireErrorCode(t, rec, http.StatusNotFound, "FALL_EVENT_NOT_FOUND")
}

func TestFallEventHandler_AcknowledgeFallEvent(t *testing.T) {
	e, fallEventUC := setupFallEventHandler(t)

	fallEventUC.EXPECT().Acknowledge(mock.Anything, "evt-1", &usecase.AcknowledgeFallEventInput{
		IsFalseAlarm:     true,
		FalseAlarmReason: "sat down",
	}).Return(&entity.FallEvent{ID: "evt-1", IsAcknowledged: true, IsFalseAlarm: true}, nil)

	rec := doRequest(e, http.MethodPost, "/fall-detection/events/evt-1/acknowledge",
		`{"isFalseAlarm":true,"falseAlarmReason":"sat down"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var event entity.FallEvent
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &event))
	assert.True(t, event.IsAcknowledged)
}

func TestFallEventHandler_AcknowledgeFallEvent_MissingVerdict(t *testing.T) {
	e, _ := setupFallEventHandler(t)

	rec := doRequest(e, http.MethodPost, "/fall-detection/events/evt-1/acknowledge", `{}`)

	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestFallEventHandler_AcknowledgeFallEvent_NotFound(t *testing.T) {
	e, fallEventUC := setupFallEventHandler(t)

	fallEventUC.EXPECT().Acknowledge(mock.Anything, "nope", mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrFallEventNotFound, "acknowledge fall event"))

	rec := doRequest(e, http.MethodPost, "/fall-detection/events/nope/acknowledge", `{"isFalseAlarm":false}`)

	requireErrorCode(t, rec, http.StatusNotFound, "FALL_EVENT_NOT_FOUND")
}

func TestFallEventHandler_GetStats(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantDays int
	}{
		{name: "default window", target: "/fall-detection/stats", wantDays: 0},
		{name: "explicit window", target: "/fall-detection/stats?days=7", wantDays: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, fallEventUC := setupFallEventHandler(t)

			fallEventUC.EXPECT().GetRecentStats(mock.Anything, testUserID, tt.wantDays).
				Return(&entity.FallStats{}, nil)

			rec := doRequest(e, http.MethodGet, tt.target, "")

			require.Equal(t, http.StatusOK, rec.Code)
			var stats map[string]float64
			require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &stats))
			assert.Equal(t, map[string]float64{
				"totalFalls":        0,
				"acknowledgedFalls": 0,
				"falseAlarms":       0,
				"avgConfidence":     0,
				"maxConfidence":     0,
				"minConfidence":     0,
			}, stats)
		})
	}
}

func TestFallEventHandler_GetStats_BadDays(t *testing.T) {
	e, _ := setupFallEventHandler(t)

	rec := doRequest(e, http.MethodGet, "/fall-detection/stats?days=week", "")

	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}
