package http

import (
	"github.com/labstack/echo/v4"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
)

const (
	contextUserKey  = "auth.user"
	contextTokenKey = "auth.token"
)

func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(contextUserKey).(*domain.User)
	return user, ok
}

func currentToken(c echo.Context) string {
	token, _ := c.Get(contextTokenKey).(string)
	return token
}
