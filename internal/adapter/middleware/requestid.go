package middleware

import (
	"loanmarket-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestID attaches a request id (honoring an inbound X-Request-ID) and a
// request-scoped logger to the echo context.
func RequestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rid := c.Request().Header.Get(echo.HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Response().Header().Set(echo.HeaderXRequestID, rid)
		c.Set("request_id", rid)
		c.Set("logger", logger.L().With(zap.String("request_id", rid)))
		return next(c)
	}
}
