package session

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meditrack/console/internal/platform/gateway"
	"github.com/meditrack/console/internal/policy"
)

// CookieName is the opaque session cookie set at login.
const CookieName = "console_session"

const sessionContextKey = "session"

// SetCookie writes the session cookie on the response.
func SetCookie(c echo.Context, s *Session, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    s.ID,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromContext returns the resolved session, or nil for anonymous requests.
func FromContext(c echo.Context) *Session {
	s, _ := c.Get(sessionContextKey).(*Session)
	return s
}

// Resolve looks up the session cookie on every request. When a live
// session is found it is placed on the echo context, the user and role
// are exposed for the request logger, and the hospital API token is
// attached to the request context so repositories pick it up without
// knowing about sessions. Anonymous requests pass through untouched.
func Resolve(store Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			s, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				return next(c)
			}

			c.Set(sessionContextKey, s)
			c.Set("session_user_id", s.User.ID)
			c.Set("session_role", string(s.User.Role))

			ctx := gateway.WithToken(c.Request().Context(), s.Token)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// RequireSession rejects anonymous requests with a 401 carrying the login
// redirect target.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if FromContext(c) == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message":  "session expired, please sign in again",
					"redirect": "/login",
				})
			}
			return next(c)
		}
	}
}

// Require gates a route on a policy action. The check mirrors what the
// hospital API enforces server side; it exists so the console never
// offers a control its operator cannot use.
func Require(action policy.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := FromContext(c)
			if s == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message":  "session expired, please sign in again",
					"redirect": "/login",
				})
			}
			if !policy.CanPerform(s.User.Role, action) {
				return echo.NewHTTPError(http.StatusForbidden, "your role does not permit this action")
			}
			return next(c)
		}
	}
}
