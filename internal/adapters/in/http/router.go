package http

import (
	"errors"
	"net/http"

	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/pkg/logger"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const BaseURL = "/api/v1"

// RouterOptions configures NewRouter.
type RouterOptions struct {
	Server    ServerInterface
	Logger    *logger.Logger
	JWT       JWTConfig
	AdminRole kernel.Role
	// Gatherer backs /metrics; nil serves the default registry.
	Gatherer prometheus.Gatherer
	// Document backs the swagger UI and, with ValidateRequests, request
	// validation. Both are off when it is nil.
	Document         *openapi3.T
	ValidateRequests bool
}

// NewRouter builds the echo instance serving the pickup API, health,
// metrics and swagger endpoints.
func NewRouter(opts RouterOptions) (*echo.Echo, error) {
	if opts.Server == nil {
		return nil, errors.New("server is required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	adminRole := opts.AdminRole
	if adminRole == "" {
		adminRole = kernel.RoleAdmin
	}
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(log)
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestContext(log))
	e.Use(requestLogger(log))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group(BaseURL, Identity(opts.JWT, log))
	if opts.Document != nil {
		if opts.ValidateRequests {
			validation, err := RequestValidation(opts.Document)
			if err != nil {
				return nil, err
			}
			api.Use(validation)
		}

		if err := registerSwagger(opts.Document); err != nil {
			return nil, err
		}
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}
	RegisterHandlers(api, opts.Server, "", RequireRole(adminRole))

	return e, nil
}

// requestContext carries the request id into the logger context.
func requestContext(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ctx := log.WithRequestID(c.Request().Context(), rid)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func requestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zerolog.InfoLevel
			switch {
			case v.Status >= http.StatusInternalServerError:
				level = zerolog.ErrorLevel
			case v.Status >= http.StatusBadRequest:
				level = zerolog.WarnLevel
			}
			event := log.Event(c.Request().Context(), level).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency)
			if v.Error != nil {
				event = event.Err(v.Error)
			}
			event.Msg("http request")
			return nil
		},
	})
}
