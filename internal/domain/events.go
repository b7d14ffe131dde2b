package domain

// Stream names (должны совпадать с UI-шлюзом)
const (
	StreamMapGestures = "stream:map:gestures"
	StreamMapEffects  = "stream:map:effects"
)

// GestureKind - жест пользователя на карте
type GestureKind string

const (
	GestureMarkerTap     GestureKind = "marker_tap"
	GestureBackgroundTap GestureKind = "background_tap"
)

// GestureEvent - входящий жест из стрима жестов
type GestureEvent struct {
	Kind     GestureKind `json:"kind"`
	MarkerID string      `json:"marker_id,omitempty"`
}

// EffectKind - UI-эффект, адресованный слою отображения
type EffectKind string

const (
	EffectShowAreaPanel EffectKind = "show_area_panel"
	EffectResetPanels   EffectKind = "reset_panels"
	EffectMoveCamera    EffectKind = "move_camera"
)

// EffectEvent - исходящий UI-эффект в стриме эффектов.
// Координаты без omitempty: нулевая широта/долгота - валидная точка
type EffectEvent struct {
	Kind  EffectKind `json:"kind"`
	Area  *Area      `json:"area,omitempty"`
	Lat   float64    `json:"lat"`
	Lng   float64    `json:"lng"`
	Eased bool       `json:"eased,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
