package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/whereizit-service/internal/delivery/http/handler"
	"github.com/whereizit-service/internal/domain"
)

// MockMarkerBoardRepository is a mock of MarkerBoardRepository
type MockMarkerBoardRepository struct {
	mock.Mock
}

func (m *MockMarkerBoardRepository) Snapshot(ctx context.Context) ([]*domain.Marker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Marker), args.Error(1)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) Publish(ctx context.Context, stream string, payload interface{}) error {
	args := m.Called(ctx, stream, payload)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func newMarkerApp(board *MockMarkerBoardRepository, stream *MockStreamRepository) *fiber.App {
	h := handler.NewMarkerHandler(board, stream, zap.NewNop())

	app := fiber.New()
	app.Get("/markers", h.List)
	app.Post("/markers/:id/tap", h.Tap)
	app.Post("/map/tap", h.BackgroundTap)
	return app
}

func decodeBody(t *testing.T, resp io.Reader) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp).Decode(&body))
	return body
}

func TestMarkerHandler_List(t *testing.T) {
	t.Run("returns the current marker snapshot", func(t *testing.T) {
		board := &MockMarkerBoardRepository{}
		stream := &MockStreamRepository{}
		app := newMarkerApp(board, stream)

		board.On("Snapshot", mock.Anything).Return([]*domain.Marker{
			{
				ID:   "doc-1",
				Lat:  37.5,
				Lng:  127.03,
				Icon: "smokingMarker",
				Area: &domain.Area{Category: domain.CategorySmokingArea},
			},
		}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/markers", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		data := body["data"].(map[string]interface{})
		markers := data["markers"].([]interface{})
		assert.Len(t, markers, 1)
		first := markers[0].(map[string]interface{})
		assert.Equal(t, "doc-1", first["id"])
		assert.Equal(t, "smokingMarker", first["icon"])
	})

	t.Run("board failure responds with cache error", func(t *testing.T) {
		board := &MockMarkerBoardRepository{}
		stream := &MockStreamRepository{}
		app := newMarkerApp(board, stream)

		board.On("Snapshot", mock.Anything).Return(nil, errors.New("redis: connection refused"))

		resp, err := app.Test(httptest.NewRequest("GET", "/markers", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		errBody := body["error"].(map[string]interface{})
		assert.Equal(t, "CACHE_ERROR", errBody["code"])
	})
}

func TestMarkerHandler_Tap(t *testing.T) {
	board := &MockMarkerBoardRepository{}
	stream := &MockStreamRepository{}
	app := newMarkerApp(board, stream)

	stream.On("Publish", mock.Anything, domain.StreamMapGestures, domain.GestureEvent{
		Kind:     domain.GestureMarkerTap,
		MarkerID: "doc-1",
	}).Return(nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/markers/doc-1/tap", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	stream.AssertExpectations(t)
}

func TestMarkerHandler_BackgroundTap(t *testing.T) {
	board := &MockMarkerBoardRepository{}
	stream := &MockStreamRepository{}
	app := newMarkerApp(board, stream)

	stream.On("Publish", mock.Anything, domain.StreamMapGestures, domain.GestureEvent{
		Kind: domain.GestureBackgroundTap,
	}).Return(nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/map/tap", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	stream.AssertExpectations(t)
}
