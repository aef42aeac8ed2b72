package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Logger logs one structured line per request. When a session has been
// resolved by the time the handler returns, the staff member and role are
// included so screen activity can be traced per user.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			rid, _ := c.Get("request_id").(string)

			err := next(c)

			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}

			evt.
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP())

			if userID, ok := c.Get("session_user_id").(int64); ok {
				evt.Int64("user_id", userID)
			}
			if role, ok := c.Get("session_role").(string); ok {
				evt.Str("role", role)
			}

			evt.Msg("request")
			return err
		}
	}
}
