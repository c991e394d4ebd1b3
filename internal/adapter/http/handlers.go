package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	domain "merhaba-api/internal/domain/greeting"
	"merhaba-api/internal/infrastructure/health"
	"merhaba-api/internal/usecase/greeting"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	uc    *greeting.Usecase
	ready *health.Registry
}

// NewHandler wires the greeting usecase. ready may be nil, in which case
// /ready only reports the process itself.
func NewHandler(uc *greeting.Usecase, ready *health.Registry) *Handler {
	if ready == nil {
		ready = health.NewRegistry(0)
		ready.Register("self", health.Self)
	}
	return &Handler{uc: uc, ready: ready}
}

func (h *Handler) Index(c echo.Context) error {
	return c.String(http.StatusOK, h.uc.Index())
}

func (h *Handler) Hello(c echo.Context) error {
	msg := h.uc.Hello(c.Request().Context(), c.QueryParam("name"))
	return c.JSON(http.StatusOK, msg)
}

func (h *Handler) HelloPath(c echo.Context) error {
	name, ok := pathParam(c, "name")
	if !ok {
		return echo.ErrNotFound
	}
	msg, err := h.uc.HelloPath(c.Request().Context(), name)
	if errors.Is(err, domain.ErrEmptyName) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *Handler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Info(c.Request().Context()))
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Health(c.Request().Context()))
}

func (h *Handler) Ready(c echo.Context) error {
	res := h.ready.Evaluate(c.Request().Context())
	status := http.StatusOK
	if !res.Healthy() {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, res)
}

// pathParam returns the URL-decoded value of a single path segment. A
// trailing param in echo also matches the rest of the path, so a value
// holding a literal "/" means the request spans several segments and ok is
// false. The router matches on RawPath when the request carries escapes such
// as %2F, and leaves those escapes in the value.
func pathParam(c echo.Context, name string) (string, bool) {
	v := c.Param(name)
	if strings.Contains(v, "/") {
		return "", false
	}
	if c.Request().URL.RawPath == "" {
		return v, true
	}
	if dec, err := url.PathUnescape(v); err == nil {
		return dec, true
	}
	return v, true
}
