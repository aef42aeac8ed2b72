package patientrequest

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
	g.GET("/patient-requests", h.List, session.RequireSession())
	g.POST("/patient-requests", h.File, session.Require(policy.FilePatientRequest))
	g.PUT("/patient-requests/:id/approve", h.Approve, session.Require(policy.ProcessPatientRequest))
	g.PUT("/patient-requests/:id/reject", h.Reject, session.Require(policy.ProcessPatientRequest))
	g.PUT("/patient-requests/:id/registered", h.MarkRegistered, session.Require(policy.MarkRequestRegistered))
}

func (h *Handler) List(c echo.Context) error {
	ident := session.FromContext(c).User
	data, err := h.svc.Screen(c.Request().Context(), ident, c.QueryParam("status"))
	return screen.RenderList(c, data, emptyScreen(), err)
}

func (h *Handler) File(c echo.Context) error {
	var in FileInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ident := session.FromContext(c).User
	data, err := h.svc.File(c.Request().Context(), ident, in)
	return screen.RenderMutation(c, data, err)
}

func (h *Handler) Approve(c echo.Context) error {
	id, err := requestID(c)
	if err != nil {
		return err
	}
	ident := session.FromContext(c).User
	data, err := h.svc.Approve(c.Request().Context(), ident, id)
	return screen.RenderMutation(c, data, err)
}

func (h *Handler) Reject(c echo.Context) error {
	id, err := requestID(c)
	if err != nil {
		return err
	}
	var in struct {
		Remarks string `json:"remarks"`
	}
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ident := session.FromContext(c).User
	data, err := h.svc.Reject(c.Request().Context(), ident, id, in.Remarks)
	return screen.RenderMutation(c, data, err)
}

func (h *Handler) MarkRegistered(c echo.Context) error {
	id, err := requestID(c)
	if err != nil {
		return err
	}
	ident := session.FromContext(c).User
	data, err := h.svc.MarkRegistered(c.Request().Context(), ident, id)
	return screen.RenderMutation(c, data, err)
}

func requestID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
