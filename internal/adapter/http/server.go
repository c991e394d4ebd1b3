package http

import (
	"fmt"
	"net"

	"github.com/labstack/echo/v4"
)

// Listen binds addr and hands the listener to e, so a later e.Start serves
// on it. A busy port is reported here rather than from the Start goroutine.
func Listen(e *echo.Echo, addr string) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	e.Listener = ln
	return ln.Addr(), nil
}
