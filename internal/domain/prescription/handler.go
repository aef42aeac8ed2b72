package prescription

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
	g.GET("/prescriptions", h.List, session.RequireSession())
	g.GET("/prescriptions/patient/:id", h.SearchByPatient, session.RequireSession())
	g.POST("/prescriptions", h.Create, session.Require(policy.CreatePrescription))
	g.PUT("/prescriptions/:id/complete", h.Complete, session.Require(policy.UpdatePrescription))
	g.PUT("/prescriptions/:id/stop", h.Stop, session.Require(policy.UpdatePrescription))
}

func (h *Handler) List(c echo.Context) error {
	ident := session.FromContext(c).User
	data, err := h.svc.Screen(c.Request().Context(), ident)
	return screen.RenderList(c, data, emptyScreen(), err)
}

func (h *Handler) SearchByPatient(c echo.Context) error {
	patientID, err := pathID(c)
	if err != nil {
		return err
	}
	ident := session.FromContext(c).User
	data, err := h.svc.SearchByPatient(c.Request().Context(), ident, patientID)
	if err != nil {
		return screen.MutationError(c, err)
	}
	return c.JSON(http.StatusOK, screen.Loaded(data))
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

func (h *Handler) Complete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ident := session.FromContext(c).User
	data, err := h.svc.Complete(c.Request().Context(), ident, id)
	return screen.RenderMutation(c, data, err)
}

func (h *Handler) Stop(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ident := session.FromContext(c).User
	data, err := h.svc.Stop(c.Request().Context(), ident, id)
	return screen.RenderMutation(c, data, err)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
