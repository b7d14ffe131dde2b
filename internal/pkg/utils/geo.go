package utils

import "fmt"

// ValidateCoordinates проверяет валидность координат WGS84
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// FormatDistance форматирует дистанцию в метрах для списка "рядом":
// до километра - метры без дробной части, дальше - километры с одной
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0fm", meters)
	}
	return fmt.Sprintf("%.1fkm", meters/1000)
}
