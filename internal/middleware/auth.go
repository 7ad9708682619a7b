package middleware

import (
	"equistore-backend/internal/apperr"
	"equistore-backend/internal/service"
	"strings"

	"github.com/labstack/echo/v4"
)

// AdminAuth requires a valid bearer token from AdminService.Login on
// every admin operation. Login itself stays outside this middleware.
func AdminAuth(adminService service.AdminService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return apperr.ErrUnauthorized
			}

			if err := adminService.VerifyToken(token); err != nil {
				return err
			}

			return next(c)
		}
	}
}
