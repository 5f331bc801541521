package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/secourse/clinic-scheduler/internal/api/handler"
	"github.com/secourse/clinic-scheduler/internal/core/ports"
)

// RouterOption customises NewRouter.
type RouterOption func(*routerOptions)

type routerOptions struct {
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
}

// WithRegistry sends the HTTP request metrics to reg and serves /metrics from
// it. Without it the Prometheus default registry is used, which allows only
// one router per process.
func WithRegistry(reg *prometheus.Registry) RouterOption {
	return func(o *routerOptions) {
		o.registerer = reg
		o.gatherer = reg
	}
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(accounts ports.AccountService, scheduling ports.SchedulingService, log zerolog.Logger, opts ...RouterOption) *echo.Echo {
	o := routerOptions{registerer: prometheus.DefaultRegisterer, gatherer: prometheus.DefaultGatherer}
	for _, opt := range opts {
		opt(&o)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "clinic",
		Registerer: o.registerer,
	}))

	// --- Handlers ---
	accountHandler := handler.NewAccountHandler(accounts)
	appointmentHandler := handler.NewAppointmentHandler(scheduling)
	healthHandler := handler.NewHealthHandler()

	v1 := e.Group("/v1")

	// --- Account routes ---
	v1.POST("/accounts", accountHandler.Create)
	v1.GET("/accounts", accountHandler.List)
	v1.GET("/accounts/:id", accountHandler.Get)
	v1.DELETE("/accounts/:id", accountHandler.Delete)
	v1.GET("/accounts/:id/:field", accountHandler.GetField)
	v1.PUT("/accounts/:id/:field", accountHandler.UpdateField)

	// --- Appointment routes ---
	v1.POST("/appointments", appointmentHandler.Create)
	v1.GET("/appointments", appointmentHandler.List)
	v1.GET("/appointments/:id", appointmentHandler.Get)
	v1.DELETE("/appointments/:id", appointmentHandler.Delete)
	v1.POST("/appointments/:id/cancel", appointmentHandler.Cancel)
	v1.PUT("/appointments/:id/start-time", appointmentHandler.Reschedule)

	// --- Probes and metrics ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: o.gatherer}))

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
