package appointment

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/meditrack/console/internal/platform/session"
	"github.com/meditrack/console/internal/policy"
	"github.com/meditrack/console/internal/screen"
	"github.com/meditrack/console/internal/workflow"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/appointments", h.List, session.RequireSession())
	g.POST("/appointments", h.Book, session.Require(policy.BookAppointment))
	g.PUT("/appointments/:id/status", h.SetStatus, session.Require(policy.ChangeAppointmentStatus))
}

func (h *Handler) List(c echo.Context) error {
	ident := session.FromContext(c).User
	data, err := h.svc.Screen(c.Request().Context(), ident)
	return screen.RenderList(c, data, emptyScreen(), err)
}

func (h *Handler) Book(c echo.Context) error {
	var in BookInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ident := session.FromContext(c).User
	data, err := h.svc.Book(c.Request().Context(), ident, in)
	return screen.RenderMutation(c, data, err)
}

func (h *Handler) SetStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	status := c.QueryParam("status")
	if status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status query parameter is required")
	}
	ident := session.FromContext(c).User
	data, err := h.svc.SetStatus(c.Request().Context(), ident, id, workflow.Status(status))
	return screen.RenderMutation(c, data, err)
}
