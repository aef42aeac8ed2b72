package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestBodyLimit_RejectsOversizedContentLength(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(strings.Repeat("x", 100)))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := BodyLimit(10)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err := h(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %v", err)
	}
}

func TestBodyLimit_EnforcesLimitWithoutContentLength(t *testing.T) {
	e := echo.New()
	// Chunked request, no Content-Length to reject early.
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(strings.Repeat("x", 100)))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := BodyLimit(10)(func(c echo.Context) error {
		_, err := io.ReadAll(c.Request().Body)
		return err
	})

	err := h(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 from limited reader, got %v", err)
	}
}

func TestBodyLimit_PassesSmallBodies(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/beds", strings.NewReader(`{"bedNumber":"B-102"}`))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got string
	h := BodyLimit(1024)(func(c echo.Context) error {
		b, err := io.ReadAll(c.Request().Body)
		got = string(b)
		return err
	})

	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"bedNumber":"B-102"}` {
		t.Errorf("body mangled: %q", got)
	}
}

func TestBodyLimit_AllowsEmptyBody(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/beds", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := BodyLimit(10)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected handler to run")
	}
}
