package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/whereizit-service/internal/domain"
	"github.com/whereizit-service/internal/usecase"
)

// recordingSurface пишет журнал операций над картой, чтобы проверять не
// только итоговое состояние, но и порядок add/remove
type recordingSurface struct {
	ops     []string
	markers map[string]*domain.Marker
	camera  []string
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{markers: make(map[string]*domain.Marker)}
}

func (s *recordingSurface) Clear(_ context.Context) error {
	s.ops = append(s.ops, "clear")
	s.markers = make(map[string]*domain.Marker)
	return nil
}

func (s *recordingSurface) AddMarker(_ context.Context, marker *domain.Marker) error {
	s.ops = append(s.ops, "add:"+marker.ID)
	s.markers[marker.ID] = marker
	return nil
}

func (s *recordingSurface) RemoveMarker(_ context.Context, markerID string) error {
	s.ops = append(s.ops, "remove:"+markerID)
	delete(s.markers, markerID)
	return nil
}

func (s *recordingSurface) MoveCamera(_ context.Context, lat, lng float64, eased bool) error {
	s.camera = append(s.camera, fmt.Sprintf("%.2f,%.2f,eased=%t", lat, lng, eased))
	return nil
}

type recordingPanels struct {
	shown  []*domain.Area
	resets int
}

func (p *recordingPanels) ShowAreaPanel(_ context.Context, area *domain.Area) error {
	p.shown = append(p.shown, area)
	return nil
}

func (p *recordingPanels) ResetPanels(_ context.Context) error {
	p.resets++
	return nil
}

func areaFields(name string, lat, lng float64) map[string]interface{} {
	return map[string]interface{}{
		"name":        name,
		"description": "설명",
		"areaLat":     lat,
		"areaLng":     lng,
		"category":    "흡연구역",
	}
}

func TestMarkerSyncUseCase_ApplyChanges(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("added places a marker", func(t *testing.T) {
		surface := newRecordingSurface()
		panels := &recordingPanels{}
		uc := usecase.NewMarkerSyncUseCase(surface, panels, logger)

		uc.ApplyChanges(ctx, []domain.DocumentChange{
			{Kind: domain.ChangeAdded, DocumentID: "doc-1", Fields: areaFields("A", 37.5, 127.0)},
		})

		assert.Equal(t, 1, uc.MarkerCount())
		assert.Equal(t, []string{"add:doc-1"}, surface.ops)
		assert.Equal(t, "smokingMarker", surface.markers["doc-1"].Icon)
		assert.Equal(t, 0, panels.resets)
	})

	t.Run("duplicate added detaches the stale marker first", func(t *testing.T) {
		surface := newRecordingSurface()
		panels := &recordingPanels{}
		uc := usecase.NewMarkerSyncUseCase(surface, panels, logger)

		uc.ApplyChanges(ctx, []domain.DocumentChange{
			{Kind: domain.ChangeAdded, DocumentID: "doc-1", Fields: areaFields("A", 37.5, 127.0)},
			{Kind: domain.ChangeAdded, DocumentID: "doc-1", Fields: areaFields("A2", 37.6, 127.1)},
		})

		assert.Equal(t, 1, uc.MarkerCount())
		assert.Equal(t, []string{"add:doc-1", "remove:doc-1", "add:doc-1"}, surface.ops)
		assert.Equal(t, "A2", surface.markers["doc-1"].Area.Name)
	})

	t.Run("modified replaces the marker and resets panels", func(t *testing.T) {
		surface := newRecordingSurface()
		panels := &recordingPanels{}
		uc := usecase.NewMarkerSyncUseCase(surface, panels, logger)

		uc.ApplyChanges(ctx, []domain.DocumentChange{
			{Kind: domain.ChangeAdded, DocumentID: "doc-1", Fields: areaFields("A", 37.5, 127.0)},
		})
		uc.ApplyChanges(ctx, []domain.DocumentChange{
			{Kind: domain.ChangeModified, DocumentID: "doc-1", Fields: areaFields("B", 37.7, 127.2)},
		})

		assert.Equal(t, 1, uc.MarkerCount())
		assert.Equal(t, []string{"add:doc-1", "remove:doc-1", "add:doc-1"}, surface.ops)
		assert.Equal(t, "B", surface.markers["doc-1"].Area.Name)
		assert.Equal(t, 37.7, surface.markers["doc-1"].Lat)
		assert.Equal(t, 1, panels.resets)
	})

	t.Run("modified for unknown document is a no-op", func(t *testing.T) {
		surface := newRecordingSurface()
		panels := &recordingPanels{}
		uc := usecase.NewMarkerSyncUseCase(surface, panels, logger)

		uc.ApplyChanges(ctx, []domain.DocumentChange{
			{Kind: domain.ChangeModified, DocumentID: "ghost", Fields: areaFields("X", 37.5, 127.0)},
		})

		assert.Zero(t, uc.MarkerCount())
		assert.Empty(t, surface.ops)
		assert.Equal(t, 0, panels.resets)
	})

	t.Run("removed detaches the marker and resets panels", func(t *testing.T) {
		surface := newRecordingSurface()
		panels := &recordingPanels{}
		uc := usecase.NewMarkerSyncUseCase(surface, panels, logger)

		uc.ApplyChanges(ctx, []domain.DocumentChange{
			{Kind: domain.ChangeAdded, DocumentID: "doc-1", Fields: areaFields("A", 37.5, 127.0)},
		})
		uc.ApplyChanges(ctx, []domain.DocumentChange{
			{Kind: domain.ChangeRemoved, DocumentID: "doc-1", Fields: areaFields("A", 37.5, 127.0)},
		})

		assert.Zero(t, uc.MarkerCount())
		assert.Equal(t, []string{"add:doc-1", "remove:doc-1"}, surface.ops)
		assert.Empty(t, surface.markers)
		assert.Equal(t, 1, panels.resets)
	})

	t.Run("removed for unknown document is a no-op", func(t *testing.T) {
		surface := newRecordingSurface()
		panels := &recordingPanels{}
		uc := usecase.NewMarkerSyncUseCase(surface, panels, logger)

		uc.ApplyChanges(ctx, []domain.DocumentChange{
			{Kind: domain.ChangeRemoved, DocumentID: "ghost", Fields: areaFields("X", 37.5, 127.0)},
		})

		assert.Empty(t, surface.ops)
		assert.Equal(t, 0, panels.resets)
	})

	t.Run("malformed document is skipped, batch continues", func(t *testing.T) {
		surface := newRecordingSurface()
		panels := &recordingPanels{}
		uc := usecase.NewMarkerSyncUseCase(surface, panels, logger)

		uc.ApplyChanges(ctx, []domain.DocumentChange{
			{Kind: domain.ChangeAdded, DocumentID: "bad", Fields: map[string]interface{}{
				"name": "no coordinates",
			}},
			{Kind: domain.ChangeAdded, DocumentID: "doc-1", Fields: areaFields("A", 37.5, 127.0)},
		})

		assert.Equal(t, 1, uc.MarkerCount())
		assert.Equal(t, []string{"add:doc-1"}, surface.ops)
	})

	t.Run("uncategorized area gets the fallback icon", func(t *testing.T) {
		surface := newRecordingSurface()
		panels := &recordingPanels{}
		uc := usecase.NewMarkerSyncUseCase(surface, panels, logger)

		fields := areaFields("A", 37.5, 127.0)
		fields["category"] = ""

		uc.ApplyChanges(ctx, []domain.DocumentChange{
			{Kind: domain.ChangeAdded, DocumentID: "doc-1", Fields: fields},
		})

		assert.Equal(t, domain.FallbackMarkerIcon, surface.markers["doc-1"].Icon)
	})

	t.Run("reapplying the same batch converges to the same set", func(t *testing.T) {
		surface := newRecordingSurface()
		panels := &recordingPanels{}
		uc := usecase.NewMarkerSyncUseCase(surface, panels, logger)

		batch := []domain.DocumentChange{
			{Kind: domain.ChangeAdded, DocumentID: "doc-1", Fields: areaFields("A", 37.5, 127.0)},
			{Kind: domain.ChangeAdded, DocumentID: "doc-2", Fields: areaFields("B", 37.6, 127.1)},
		}

		uc.ApplyChanges(ctx, batch)
		uc.ApplyChanges(ctx, batch)

		assert.Equal(t, 2, uc.MarkerCount())
		assert.Len(t, surface.markers, 2)
	})
}

func TestMarkerSyncUseCase_Reset(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("drops every marker and clears the surface", func(t *testing.T) {
		surface := newRecordingSurface()
		panels := &recordingPanels{}
		uc := usecase.NewMarkerSyncUseCase(surface, panels, logger)

		uc.ApplyChanges(ctx, []domain.DocumentChange{
			{Kind: domain.ChangeAdded, DocumentID: "doc-1", Fields: areaFields("A", 37.5, 127.0)},
			{Kind: domain.ChangeAdded, DocumentID: "doc-2", Fields: areaFields("B", 37.6, 127.1)},
		})

		assert.NoError(t, uc.Reset(ctx))

		assert.Zero(t, uc.MarkerCount())
		assert.Empty(t, surface.markers)

		// Тап по маркеру прошлого поколения - no-op
		uc.HandleMarkerTap(ctx, "doc-1")
		assert.Empty(t, panels.shown)
	})

	t.Run("fresh snapshot after reset rebuilds the set", func(t *testing.T) {
		surface := newRecordingSurface()
		panels := &recordingPanels{}
		uc := usecase.NewMarkerSyncUseCase(surface, panels, logger)

		uc.ApplyChanges(ctx, []domain.DocumentChange{
			{Kind: domain.ChangeAdded, DocumentID: "stale", Fields: areaFields("old", 37.0, 127.0)},
		})
		assert.NoError(t, uc.Reset(ctx))
		uc.ApplyChanges(ctx, []domain.DocumentChange{
			{Kind: domain.ChangeAdded, DocumentID: "doc-1", Fields: areaFields("A", 37.5, 127.0)},
		})

		assert.Equal(t, 1, uc.MarkerCount())
		assert.Contains(t, surface.markers, "doc-1")
		assert.NotContains(t, surface.markers, "stale")
	})
}

func TestMarkerSyncUseCase_HandleMarkerTap(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("tap shows the panel and eases the camera", func(t *testing.T) {
		surface := newRecordingSurface()
		panels := &recordingPanels{}
		uc := usecase.NewMarkerSyncUseCase(surface, panels, logger)

		uc.ApplyChanges(ctx, []domain.DocumentChange{
			{Kind: domain.ChangeAdded, DocumentID: "doc-1", Fields: areaFields("A", 37.5, 127.0)},
		})

		uc.HandleMarkerTap(ctx, "doc-1")

		assert.Len(t, panels.shown, 1)
		assert.Equal(t, "A", panels.shown[0].Name)
		assert.Equal(t, []string{"37.50,127.00,eased=true"}, surface.camera)
	})

	t.Run("tap on removed marker is a no-op", func(t *testing.T) {
		surface := newRecordingSurface()
		panels := &recordingPanels{}
		uc := usecase.NewMarkerSyncUseCase(surface, panels, logger)

		uc.ApplyChanges(ctx, []domain.DocumentChange{
			{Kind: domain.ChangeAdded, DocumentID: "doc-1", Fields: areaFields("A", 37.5, 127.0)},
			{Kind: domain.ChangeRemoved, DocumentID: "doc-1", Fields: areaFields("A", 37.5, 127.0)},
		})

		uc.HandleMarkerTap(ctx, "doc-1")

		assert.Empty(t, panels.shown)
		assert.Empty(t, surface.camera)
	})
}

func TestMarkerSyncUseCase_HandleBackgroundTap(t *testing.T) {
	ctx := context.Background()
	surface := newRecordingSurface()
	panels := &recordingPanels{}
	uc := usecase.NewMarkerSyncUseCase(surface, panels, zap.NewNop())

	uc.HandleBackgroundTap(ctx)

	assert.Equal(t, 1, panels.resets)
	assert.Empty(t, surface.ops)
}
