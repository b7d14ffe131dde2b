package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/whereizit-service/internal/domain"
)

// PrincipalKey - ключ principal в locals запроса
const PrincipalKey = "principal"

// Principal - middleware, собирающий подписанного пользователя из
// заголовков шлюза. Отсутствие заголовков означает анонимный запрос;
// обязательность проверяют usecase'ы.
func Principal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid := c.Get("X-User-Uid")
		if uid != "" {
			c.Locals(PrincipalKey, &domain.Principal{
				UID:         uid,
				Email:       c.Get("X-User-Email"),
				DisplayName: c.Get("X-User-Name"),
				PhotoURL:    c.Get("X-User-Photo"),
			})
		}
		return c.Next()
	}
}

// PrincipalFromCtx возвращает principal запроса или nil для анонимных
func PrincipalFromCtx(c *fiber.Ctx) *domain.Principal {
	if p, ok := c.Locals(PrincipalKey).(*domain.Principal); ok {
		return p
	}
	return nil
}
