package authn

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meditrack/console/internal/platform/gateway"
	"github.com/meditrack/console/internal/platform/middleware"
	"github.com/meditrack/console/internal/platform/session"
	"github.com/meditrack/console/internal/screen"
)

type Handler struct {
	svc          *Service
	secureCookie bool
}

func NewHandler(svc *Service, secureCookie bool) *Handler {
	return &Handler{svc: svc, secureCookie: secureCookie}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	// The credential endpoints are the only unauthenticated writes, so they
	// get a per-IP rate limit against password guessing.
	limit := middleware.RateLimit(middleware.DefaultLoginRateLimit())
	g.POST("/auth/login", h.Login, limit)
	g.POST("/auth/register", h.Register, limit)
	g.POST("/auth/logout", h.Logout, session.RequireSession())
	g.GET("/auth/me", h.Me, session.RequireSession())
}

func (h *Handler) Login(c echo.Context) error {
	var creds Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.svc.Login(c.Request().Context(), creds)
	if err != nil {
		// Bad credentials stay an inline message on the login form, not
		// a redirect loop.
		if errors.Is(err, gateway.ErrSessionExpired) || errors.Is(err, gateway.ErrForbidden) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "invalid email or password"})
		}
		return screen.MutationError(c, err)
	}

	session.SetCookie(c, sess, h.secureCookie)
	return c.JSON(http.StatusOK, h.svc.Me(sess))
}

func (h *Handler) Register(c echo.Context) error {
	var in RegisterInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.Register(c.Request().Context(), in)
	if err != nil {
		return screen.MutationError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) Logout(c echo.Context) error {
	sess := session.FromContext(c)
	if err := h.svc.Logout(c.Request().Context(), sess.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "logout failed")
	}
	session.ClearCookie(c, h.secureCookie)
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Me(session.FromContext(c)))
}
