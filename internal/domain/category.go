package domain

// Category - закрытая классификация области. Каждый вариант несёт свою
// иконку маркера, иконку и цвета бейджа, чтобы таблицы вида
// "категория -> иконка/цвет" не расходились между собой.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryRestroom
	CategoryTrashCan
	CategoryWater
	CategorySmokingArea
)

// FallbackMarkerIcon - иконка маркера для областей без категории
const FallbackMarkerIcon = "marker_Pin_Wind"

type categoryInfo struct {
	label       string
	displayName string
	markerIcon  string
	badgeIcon   string
	badgeColor  string
	textColor   string
}

var categories = map[Category]categoryInfo{
	CategoryRestroom: {
		label:       "화장실",
		displayName: "화장실",
		markerIcon:  "toiletMarker",
		badgeIcon:   "🚻",
		badgeColor:  "#AF52DE26",
		textColor:   "#AF52DE",
	},
	CategoryTrashCan: {
		label:       "쓰레기통",
		displayName: "쓰레기통",
		markerIcon:  "trashMarker",
		badgeIcon:   "🗑️",
		badgeColor:  "#8E8E9326",
		textColor:   "#8E8E93",
	},
	CategoryWater: {
		label:       "물",
		displayName: "물",
		markerIcon:  "waterMarker",
		badgeIcon:   "💧",
		badgeColor:  "#32ADE626",
		textColor:   "#32ADE6",
	},
	CategorySmokingArea: {
		label:       "흡연구역",
		displayName: "흡연구역",
		markerIcon:  "smokingMarker",
		badgeIcon:   "🚬",
		badgeColor:  "#FF950026",
		textColor:   "#FF9500",
	},
	CategoryUnknown: {
		label:       "",
		displayName: "카테고리 없음",
		markerIcon:  FallbackMarkerIcon,
		badgeIcon:   "❓",
		badgeColor:  "#34C75926",
		textColor:   "#34C759",
	},
}

// Categories возвращает закрытый набор известных категорий в порядке,
// в котором их показывает форма ввода.
func Categories() []Category {
	return []Category{CategoryRestroom, CategoryTrashCan, CategoryWater, CategorySmokingArea}
}

// ParseCategory сопоставляет сырое строковое значение категории с вариантом.
// Всё, что не входит в закрытый набор (включая пустую строку), - Unknown.
func ParseCategory(raw string) Category {
	for c, info := range categories {
		if c != CategoryUnknown && info.label == raw {
			return c
		}
	}
	return CategoryUnknown
}

// String возвращает значение категории в том виде, в котором оно хранится
// в документе ("" для Unknown).
func (c Category) String() string {
	return c.info().label
}

// DisplayName - человекочитаемое имя для бейджа
func (c Category) DisplayName() string {
	return c.info().displayName
}

// MarkerIcon - иконка маркера на карте
func (c Category) MarkerIcon() string {
	return c.info().markerIcon
}

// BadgeIcon - иконка бейджа категории
func (c Category) BadgeIcon() string {
	return c.info().badgeIcon
}

// BadgeColor - фоновый цвет бейджа (RGBA hex)
func (c Category) BadgeColor() string {
	return c.info().badgeColor
}

// TextColor - цвет текста бейджа (RGB hex)
func (c Category) TextColor() string {
	return c.info().textColor
}

func (c Category) info() categoryInfo {
	if info, ok := categories[c]; ok {
		return info
	}
	return categories[CategoryUnknown]
}

// MarshalText сериализует категорию её хранимым значением
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText разбирает категорию из хранимого значения
func (c *Category) UnmarshalText(text []byte) error {
	*c = ParseCategory(string(text))
	return nil
}
