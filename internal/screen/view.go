// Package screen defines the response envelope every console screen
// shares. A screen is always in exactly one of three states: loading
// (never serialized by the server, the browser owns it), loaded with
// data, or errored with a message and empty data.
package screen

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meditrack/console/internal/platform/gateway"
	"github.com/meditrack/console/internal/policy"
	"github.com/meditrack/console/internal/workflow"
)

// State is the lifecycle state of a screen's data.
type State string

const (
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateErrored State = "errored"
)

// View is the envelope for screen data. Data is never null: an errored
// view carries the empty shape of its data so the browser renders an
// empty screen with a banner instead of crashing on a missing field.
type View struct {
	State State  `json:"state"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data"`
}

// Loaded wraps data in a loaded view.
func Loaded(data any) View {
	return View{State: StateLoaded, Data: data}
}

// Errored wraps the empty shape of a screen's data in an errored view.
func Errored(err error, empty any) View {
	return View{State: StateErrored, Error: gateway.Message(err), Data: empty}
}

// RenderList responds to a screen fetch. Fetch failures other than an
// expired session degrade to a 200 errored view so the shell and menu
// stay usable while one screen shows a banner.
func RenderList(c echo.Context, data any, empty any, err error) error {
	if err == nil {
		return c.JSON(http.StatusOK, Loaded(data))
	}
	if errors.Is(err, gateway.ErrSessionExpired) {
		return sessionExpired(c)
	}
	return c.JSON(http.StatusOK, Errored(err, empty))
}

// RenderMutation responds to an action. Unlike fetches, failed mutations
// surface their real status code so the browser can show the rejection
// against the control that triggered it.
func RenderMutation(c echo.Context, data any, err error) error {
	if err == nil {
		if data == nil {
			return c.NoContent(http.StatusNoContent)
		}
		return c.JSON(http.StatusOK, Loaded(data))
	}
	return MutationError(c, err)
}

// MutationError maps the error taxonomy onto HTTP statuses.
func MutationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, gateway.ErrSessionExpired):
		return sessionExpired(c)
	case errors.Is(err, policy.ErrNotAllowed), errors.Is(err, gateway.ErrForbidden):
		return c.JSON(http.StatusForbidden, map[string]string{"message": gateway.Message(err)})
	case errors.Is(err, workflow.ErrIllegalTransition):
		return c.JSON(http.StatusConflict, map[string]string{"message": err.Error()})
	case errors.Is(err, gateway.ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"message": gateway.Message(err)})
	case errors.Is(err, gateway.ErrUnavailable):
		return c.JSON(http.StatusBadGateway, map[string]string{"message": "hospital system is unavailable, try again shortly"})
	default:
		return err
	}
}

func sessionExpired(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"message":  "session expired, please sign in again",
		"redirect": "/login",
	})
}
