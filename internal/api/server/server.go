package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/DjordjeVuckovic/brainfeed/internal/apperr"
	"github.com/DjordjeVuckovic/brainfeed/internal/metrics"
	mw "github.com/DjordjeVuckovic/brainfeed/pkg/middleware"
	pkgserver "github.com/DjordjeVuckovic/brainfeed/pkg/server"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
	healthCheckTimeout      = 2 * time.Second
	metricsPath             = "/metrics"
	defaultOpenApiPath      = "/swagger/*"
)

type Server struct {
	Echo *echo.Echo

	cfg  *Config
	hc   pkgserver.HealthChecker
	ctx  context.Context
	stop context.CancelFunc
}

// New creates the server. Its context is cancelled on SIGINT or SIGTERM.
func New(cfg *Config, hc pkgserver.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.DisableHTTP2 = !cfg.UseHttp2

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &Server{
		Echo: e,
		cfg:  cfg,
		hc:   hc,
		ctx:  ctx,
		stop: stop,
	}
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.Echo.Use(mw.Logger(mw.WithSkipper(func(c echo.Context) bool {
		return c.Request().URL.Path == metricsPath
	})))
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	}))
	return s
}

func (s *Server) SetupErrorHandler() *Server {
	s.Echo.HTTPErrorHandler = apperr.GlobalErrorHandler()
	return s
}

func (s *Server) SetupHealthChecks(path string) *Server {
	s.Echo.GET(path, func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		if !s.hc.Healthy(ctx) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

// SetupOpenApi serves the registered swagger document and UI, by default
// under /swagger/*.
func (s *Server) SetupOpenApi(path ...string) *Server {
	p := defaultOpenApiPath
	if len(path) > 0 && path[0] != "" {
		p = path[0]
	}
	s.Echo.GET(p, echoSwagger.WrapHandler)
	return s
}

func (s *Server) SetupMetrics() *Server {
	s.Echo.GET(metricsPath, echo.WrapHandler(metrics.Handler()))
	return s
}

// Context is cancelled when a shutdown signal arrives.
func (s *Server) Context() context.Context {
	return s.ctx
}

func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.ctx.Done()
}

// Start serves until a shutdown signal arrives, then drains in-flight
// requests for at most GracefulShutdownTimeout.
func (s *Server) Start() error {
	defer s.stop()

	errCh := make(chan error, 1)
	go func() {
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-s.ctx.Done():
	}

	slog.Info("Shutting down server", "timeout", GracefulShutdownTimeout)
	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	return s.Echo.Shutdown(ctx)
}
