package http

import (
	"net/http"
	"time"

	"merhaba-api/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Route struct {
	Method  string
	Path    string
	Name    string
	Handler echo.HandlerFunc
}

// Routes is the fixed greeting surface.
func Routes(h *Handler) []Route {
	return []Route{
		{http.MethodGet, "/", "index", h.Index},
		{http.MethodGet, "/hello", "hello", h.Hello},
		{http.MethodGet, "/hello/:name", "hello-path", h.HelloPath},
		{http.MethodGet, "/info", "info", h.Info},
		{http.MethodGet, "/health", "health", h.Health},
	}
}

// OpsRoutes are the operational endpoints; metrics may be nil.
func OpsRoutes(h *Handler, metrics *middleware.Metrics) []Route {
	routes := []Route{{http.MethodGet, "/ready", "ready", h.Ready}}
	if metrics != nil {
		routes = append(routes, Route{http.MethodGet, "/metrics", "metrics", metrics.Handler()})
	}
	return routes
}

func Register(e *echo.Echo, routes []Route) {
	for _, r := range routes {
		e.Add(r.Method, r.Path, r.Handler).Name = r.Name
	}
}

type RouterOptions struct {
	Logger      *zap.Logger
	Metrics     *middleware.Metrics
	SlowRequest time.Duration
}

// NewRouter builds the echo instance with middleware and every route bound.
func NewRouter(h *Handler, opts RouterOptions) *echo.Echo {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.SlowRequest == 0 {
		opts.SlowRequest = time.Second
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	mws := []echo.MiddlewareFunc{
		middleware.RequestID(),
		middleware.RequestLogger(opts.Logger, opts.SlowRequest),
	}
	if opts.Metrics != nil {
		mws = append(mws, opts.Metrics.Middleware())
	}
	// innermost, so panics still reach the logger and metrics as a 500
	mws = append(mws, echomw.Recover())
	e.Use(mws...)

	Register(e, Routes(h))
	Register(e, OpsRoutes(h, opts.Metrics))
	return e
}
