package router

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"clubhub/internal/auth"
	apperrors "clubhub/internal/errors"
)

// sessionMiddleware turns a signature-valid token into a live session. The
// token's session ID must still be present in the server-side registry;
// logout removes it, revoking the token before its expiry.
func sessionMiddleware(sessions *auth.SessionService, sessionStore auth.SessionStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			claims, err := sessions.ValidateToken(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if _, err := sessionStore.GetSession(c.Request().Context(), claims.ID); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "session expired or logged out",
					Code:  "SESSION_REVOKED",
				})
			}

			sess, err := claims.Session()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}

			c.Set(auth.ContextKeySession, sess)
			c.Set(auth.ContextKeySessionID, claims.ID)
			return next(c)
		}
	}
}

// requireAdmin gates a route group to admin sessions. The services repeat
// this check; the router is only the outer fence.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, _ := c.Get(auth.ContextKeySession).(*auth.Session)
		if sess == nil {
			he := apperrors.MapErrorToHTTP(apperrors.ErrNotAuthenticated)
			return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
		}
		if !sess.IsAdmin {
			he := apperrors.MapErrorToHTTP(apperrors.ErrAdminOnly)
			return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
		}
		return next(c)
	}
}
