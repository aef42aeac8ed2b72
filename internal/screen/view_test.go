package screen

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/meditrack/console/internal/platform/gateway"
	"github.com/meditrack/console/internal/policy"
	"github.com/meditrack/console/internal/workflow"
)

func record(t *testing.T, fn func(c echo.Context) error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := fn(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRenderList_Loaded(t *testing.T) {
	rec := record(t, func(c echo.Context) error {
		return RenderList(c, []string{"a"}, []string{}, nil)
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"state":"loaded"`) {
		t.Errorf("expected loaded state: %s", rec.Body.String())
	}
}

func TestRenderList_FetchFailureDegradesTo200(t *testing.T) {
	rec := record(t, func(c echo.Context) error {
		return RenderList(c, nil, []string{}, fmt.Errorf("%w: connection refused", gateway.ErrUnavailable))
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("a failed fetch must not break the shell, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"state":"errored"`) {
		t.Errorf("expected errored state: %s", body)
	}
	if !strings.Contains(body, `"data":[]`) {
		t.Errorf("errored view must carry the empty shape: %s", body)
	}
}

func TestRenderList_SessionExpiredIs401(t *testing.T) {
	rec := record(t, func(c echo.Context) error {
		return RenderList(c, nil, []string{}, gateway.ErrSessionExpired)
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"redirect":"/login"`) {
		t.Errorf("expected login redirect: %s", rec.Body.String())
	}
}

func TestMutationError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"policy denial", policy.ErrNotAllowed, http.StatusForbidden},
		{"upstream forbidden", gateway.ErrForbidden, http.StatusForbidden},
		{"illegal transition", fmt.Errorf("%w: NO_SHOW to SCHEDULED", workflow.ErrIllegalTransition), http.StatusConflict},
		{"validation", gateway.ErrValidation, http.StatusBadRequest},
		{"outage", gateway.ErrUnavailable, http.StatusBadGateway},
		{"expired session", gateway.ErrSessionExpired, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := record(t, func(c echo.Context) error {
				return RenderMutation(c, nil, tc.err)
			})
			if rec.Code != tc.code {
				t.Errorf("expected %d, got %d", tc.code, rec.Code)
			}
		})
	}
}

func TestRenderMutation_NoContentWithoutData(t *testing.T) {
	rec := record(t, func(c echo.Context) error {
		return RenderMutation(c, nil, nil)
	})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
