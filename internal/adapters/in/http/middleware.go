package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"kds/internal/core/domain/model/kernel"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

const (
	HubHeader   = "X-Hub-ID"
	ActorHeader = "X-Actor-ID"

	hubContextKey   = "kds.hub_id"
	actorContextKey = "kds.actor"
)

// HubMiddleware requires a UUID X-Hub-ID header and keeps it, together with
// the optional X-Actor-ID, on the echo context.
func HubMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(HubHeader))
			if raw == "" {
				return echo.NewHTTPError(http.StatusBadRequest, HubHeader+" header is required")
			}
			hubID, err := kernel.UUIDFromString(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, HubHeader+" header must be a UUID")
			}

			c.Set(hubContextKey, hubID)
			c.Set(actorContextKey, strings.TrimSpace(c.Request().Header.Get(ActorHeader)))
			return next(c)
		}
	}
}

func hubFrom(c echo.Context) kernel.UUID {
	hubID, _ := c.Get(hubContextKey).(kernel.UUID)
	return hubID
}

func actorFrom(c echo.Context) string {
	actor, _ := c.Get(actorContextKey).(string)
	return actor
}

// RequestValidator checks requests against the OpenAPI document. Requests
// for paths the document does not describe are passed through to echo.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
			}
			return next(c)
		}
	}, nil
}

// validationMessage keeps the reason and location of a validation failure
// and drops the schema dump kin-openapi appends to its errors.
func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return "request is invalid"
	}

	reason := reqErr.Reason
	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr.Err, &schemaErr) {
		reason = schemaErr.Reason
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			reason = fmt.Sprintf("%s: %s", strings.Join(pointer, "."), reason)
		}
	} else if reason == "" && reqErr.Err != nil {
		reason = reqErr.Err.Error()
	}

	switch {
	case reqErr.Parameter != nil:
		return fmt.Sprintf("parameter %q: %s", reqErr.Parameter.Name, reason)
	case reqErr.RequestBody != nil:
		return "request body: " + reason
	default:
		return reason
	}
}
