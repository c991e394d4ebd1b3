package middleware

import (
	"errors"
	"net/http"
	"time"

	"merhaba-api/pkg/id"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// RequestID honours an incoming X-Request-ID and otherwise mints a uuid.
func RequestID() echo.MiddlewareFunc {
	return echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: id.NewRequestID,
	})
}

// RequestLogger writes one zap entry per request. Slow requests are
// repeated at warn level.
func RequestLogger(log *zap.Logger, slow time.Duration) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.String("route", v.RoutePath),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
				zap.String("remote_ip", v.RemoteIP),
				zap.String("user_agent", v.UserAgent),
			}
			switch {
			case v.Error != nil && v.Status >= http.StatusInternalServerError:
				log.Error("request failed", append(fields, zap.Error(v.Error))...)
			case v.Error != nil && !isHTTPError(v.Error):
				log.Warn("request error", append(fields, zap.Error(v.Error))...)
			default:
				log.Info("request completed", fields...)
			}
			if slow > 0 && v.Latency > slow {
				log.Warn("slow request", zap.String("route", v.RoutePath), zap.Duration("latency", v.Latency))
			}
			return nil
		},
	})
}

func isHTTPError(err error) bool {
	var he *echo.HTTPError
	return errors.As(err, &he)
}
