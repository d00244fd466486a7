package auth

import (
	"net/http"

	"github.com/escrowhub/escrowhub.go/lib/responses"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const CallerHeader = "X-Caller-Id"

// IdentityMiddleware trusts the caller identity resolved by the upstream
// authenticating gateway. Requests that did not pass through the gateway
// carry no identity header and are rejected.
func IdentityMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			callerID := c.Request().Header.Get(CallerHeader)
			if callerID == "" {
				return c.JSON(http.StatusUnauthorized, responses.BadAuthError)
			}
			c.Set("CallerID", callerID)
			return next(c)
		}
	}
}

func AdminTokenMiddleware(token string) echo.MiddlewareFunc {
	if token == "" {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return middleware.KeyAuth(func(auth string, c echo.Context) (bool, error) {
		return auth == token, nil
	})
}
