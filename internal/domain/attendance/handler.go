package attendance

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
	g.GET("/attendance", h.Report, session.RequireSession())
	g.POST("/attendance/checkin/:userId", h.CheckIn, session.Require(policy.MarkAttendance))
	g.PUT("/attendance/checkout/:userId", h.CheckOut, session.Require(policy.MarkAttendance))
}

func (h *Handler) Report(c echo.Context) error {
	ident := session.FromContext(c).User
	data, err := h.svc.Screen(c.Request().Context(), ident)
	return screen.RenderList(c, data, emptyScreen(), err)
}

func (h *Handler) CheckIn(c echo.Context) error {
	userID, err := userID(c)
	if err != nil {
		return err
	}
	ident := session.FromContext(c).User
	data, err := h.svc.CheckIn(c.Request().Context(), ident, userID)
	return screen.RenderMutation(c, data, err)
}

func (h *Handler) CheckOut(c echo.Context) error {
	userID, err := userID(c)
	if err != nil {
		return err
	}
	ident := session.FromContext(c).User
	data, err := h.svc.CheckOut(c.Request().Context(), ident, userID)
	return screen.RenderMutation(c, data, err)
}

func userID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	return id, nil
}
