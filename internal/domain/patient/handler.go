package patient

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
	g.GET("/patients", h.List, session.RequireSession())
	g.POST("/patients", h.Register, session.Require(policy.RegisterPatient))
	g.PUT("/patients/:id/discharge", h.Discharge, session.Require(policy.DischargePatient))
}

func (h *Handler) List(c echo.Context) error {
	ident := session.FromContext(c).User
	data, err := h.svc.Screen(c.Request().Context(), ident)
	return screen.RenderList(c, data, emptyScreen(), err)
}

func (h *Handler) Register(c echo.Context) error {
	var in RegisterInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ident := session.FromContext(c).User
	data, err := h.svc.Register(c.Request().Context(), ident, in)
	return screen.RenderMutation(c, data, err)
}

func (h *Handler) Discharge(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	ident := session.FromContext(c).User
	data, err := h.svc.Discharge(c.Request().Context(), ident, id)
	return screen.RenderMutation(c, data, err)
}
