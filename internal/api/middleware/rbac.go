package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/morice333/workstation-queue-dashboard/internal/core/domain"
)

// RBAC enforces role-based access control on routes that require one of
// allowedRoles. Browser callers (Accept: text/html) are redirected to
// redirectTo instead of receiving the error, preserving the dashboard UX
// where a non-admin landing on an admin page is bounced to their own view.
// API callers get domain.ErrForbidden, rendered as 403 by the central
// error handler.
func RBAC(redirectTo string, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				if redirectTo != "" && wantsHTML(c) {
					return c.Redirect(http.StatusFound, redirectTo)
				}
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

func wantsHTML(c echo.Context) bool {
	accept := c.Request().Header.Get("Accept")
	return strings.Contains(accept, echo.MIMETextHTML)
}
