package domain

// TagAxis - независимая ось тегов области
type TagAxis string

const (
	TagAxisEnvironment TagAxis = "환경"
	TagAxisType        TagAxis = "유형"
	TagAxisFacility    TagAxis = "시설"
)

// TagAxes возвращает оси в порядке отображения формы
func TagAxes() []TagAxis {
	return []TagAxis{TagAxisEnvironment, TagAxisType, TagAxisFacility}
}

// Фиксированный словарь тегов: категория -> ось -> допустимые значения.
// Теги осмысленны только в паре с категорией.
var tagVocabularies = map[Category]map[TagAxis][]string{
	CategoryRestroom: {
		TagAxisEnvironment: {"남녀 구분", "남녀 공용"},
		TagAxisType:        {"건물", "식당", "술집", "카페"},
		TagAxisFacility:    {"휴지", "비데"},
	},
	CategoryTrashCan: {
		TagAxisEnvironment: {"일반 쓰레기", "재활용 쓰레기"},
		TagAxisType:        {"실외", "실내"},
		TagAxisFacility:    {"분리수거"},
	},
	CategoryWater: {
		TagAxisEnvironment: {"실내", "실외"},
		TagAxisType:        {"정수기", "음수대", "약수터"},
		TagAxisFacility:    {"온수", "얼음"},
	},
	CategorySmokingArea: {
		TagAxisEnvironment: {"실내", "실외", "밀폐형", "개방형"},
		TagAxisType:        {"흡연 구역", "카페", "술집", "식당", "노래방", "보드게임 카페", "당구장", "피시방"},
		TagAxisFacility:    {"별도 전자담배 구역", "의자", "라이터"},
	},
}

// TagVocabulary возвращает словарь тегов категории по осям. Для Unknown
// словарь пуст.
func TagVocabulary(c Category) map[TagAxis][]string {
	vocab, ok := tagVocabularies[c]
	if !ok {
		return map[TagAxis][]string{}
	}
	result := make(map[TagAxis][]string, len(vocab))
	for axis, tags := range vocab {
		result[axis] = append([]string(nil), tags...)
	}
	return result
}

// AllowedTags возвращает допустимые значения одной оси
func AllowedTags(c Category, axis TagAxis) []string {
	vocab, ok := tagVocabularies[c]
	if !ok {
		return nil
	}
	return append([]string(nil), vocab[axis]...)
}

// FilterTags оставляет только значения из словаря оси, сохраняя порядок.
// Значения вне словаря (в том числе все теги Unknown-категории)
// отбрасываются.
func FilterTags(c Category, axis TagAxis, raw []string) []string {
	allowed := AllowedTags(c, axis)
	if len(allowed) == 0 || len(raw) == 0 {
		return nil
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, tag := range allowed {
		allowedSet[tag] = struct{}{}
	}

	var result []string
	for _, tag := range raw {
		if _, ok := allowedSet[tag]; ok {
			result = append(result, tag)
		}
	}
	return result
}
