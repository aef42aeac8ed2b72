package alert

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/meditrack/console/internal/platform/session"
	"github.com/meditrack/console/internal/policy"
	"github.com/meditrack/console/internal/screen"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/alerts", h.List, session.RequireSession())
	g.POST("/alerts", h.Create, session.Require(policy.CreateAlert))
	g.PUT("/alerts/:id/resolve", h.Resolve, session.Require(policy.ResolveAlert))
}

func (h *Handler) List(c echo.Context) error {
	ident := session.FromContext(c).User
	data, err := h.svc.Screen(c.Request().Context(), ident)
	return screen.RenderList(c, data, emptyScreen(), err)
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ident := session.FromContext(c).User
	data, err := h.svc.Create(c.Request().Context(), ident, in)
	return screen.RenderMutation(c, data, err)
}

func (h *Handler) Resolve(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	ident := session.FromContext(c).User
	data, err := h.svc.Resolve(c.Request().Context(), ident, id)
	return screen.RenderMutation(c, data, err)
}
