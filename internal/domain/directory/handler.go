package directory

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/meditrack/console/internal/platform/gateway"
	"github.com/meditrack/console/internal/platform/session"
	"github.com/meditrack/console/internal/screen"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the lookup endpoints. Departments stay open so the
// staff registration form can offer them before any session exists.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/departments", h.Departments)
	g.GET("/users", h.Users, session.RequireSession())
}

func (h *Handler) Departments(c echo.Context) error {
	departments, err := h.svc.Departments(c.Request().Context())
	return screen.RenderList(c, departments, []Department{}, err)
}

func (h *Handler) Users(c echo.Context) error {
	users, err := h.svc.Users(c.Request().Context(), c.QueryParam("role"))
	if err != nil && errors.Is(err, gateway.ErrValidation) {
		return screen.MutationError(c, err)
	}
	return screen.RenderList(c, users, []User{}, err)
}
