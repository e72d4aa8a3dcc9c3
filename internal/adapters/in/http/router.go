package http

import (
	"log/slog"
	"net/http"

	"kds/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho builds the HTTP application: /health, /metrics and /swagger/* plus
// every API route behind the hub and request validation middleware.
func NewEcho(
	server *Server,
	doc *openapi3.T,
	metrics *Metrics,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) (*echo.Echo, error) {
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewErrorHandler(logger.With("component", "http"))
	e.Use(middleware.Recover())
	if metrics != nil {
		e.Use(metrics.Middleware())
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(routeMiddleware{Echo: e, middleware: []echo.MiddlewareFunc{HubMiddleware(), validator}}, server)
	return e, nil
}

// routeMiddleware attaches middleware to each generated route while unknown
// paths keep echo's plain 404.
type routeMiddleware struct {
	*echo.Echo
	middleware []echo.MiddlewareFunc
}

func (r routeMiddleware) with(m []echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := make([]echo.MiddlewareFunc, 0, len(r.middleware)+len(m))
	return append(append(out, r.middleware...), m...)
}

func (r routeMiddleware) GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.Echo.GET(path, h, r.with(m)...)
}

func (r routeMiddleware) POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.Echo.POST(path, h, r.with(m)...)
}

func (r routeMiddleware) PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.Echo.PUT(path, h, r.with(m)...)
}

func (r routeMiddleware) PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.Echo.PATCH(path, h, r.with(m)...)
}

func (r routeMiddleware) DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.Echo.DELETE(path, h, r.with(m)...)
}
