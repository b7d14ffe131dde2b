package domain

// Principal - аутентифицированный пользователь запроса. Передаётся явно
// туда, где нужна личность; глобального доступа к "текущему пользователю"
// нет.
type Principal struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
}
