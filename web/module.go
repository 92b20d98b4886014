package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nmehta6/stagehand/config"
	"github.com/nmehta6/stagehand/core"
)

const Name = "web"

// Engine returns the gin engine the web module published, for callers that
// resolved the module through the container rather than Init dependencies.
func Engine(c core.Container) *gin.Engine {
	return core.Get[*gin.Engine](c)
}

// New builds the HTTP server module. It requires a "web" configuration
// section and publishes the gin engine and http.Server into the container
// during Init.
func New(opts ...Option) core.Module {
	var options Options
	for _, o := range opts {
		o(&options)
	}
	return &webModule{opts: options}
}

type webModule struct {
	opts   Options
	cfg    Config
	logger *slog.Logger
	server *http.Server
}

func (m *webModule) Name() string                  { return Name }
func (m *webModule) ConfigurationName() string     { return Name }
func (m *webModule) IsConfigurationRequired() bool { return true }

func (m *webModule) Init(opts core.InitOptions) error {
	if err := config.NewBinder().Bind(opts.Config, &m.cfg); err != nil {
		return fmt.Errorf("web config: %w", err)
	}
	m.logger = core.Get[*slog.Logger](opts.Container)

	if !opts.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(RequestID())
	r.Use(Recovery(m.logger))
	r.Use(AccessLog(m.logger))
	for _, mw := range m.opts.Middlewares {
		r.Use(mw)
	}

	var root Router = r
	for _, reg := range m.opts.Routes {
		reg(root)
	}

	m.server = &http.Server{
		Addr:         m.cfg.Addr,
		Handler:      r,
		ReadTimeout:  m.cfg.ReadTimeout,
		WriteTimeout: m.cfg.WriteTimeout,
		IdleTimeout:  m.cfg.IdleTimeout,
	}

	core.Put[*gin.Engine](opts.Container, r)
	core.Put[*http.Server](opts.Container, m.server)
	return nil
}

func (m *webModule) OnBootstrap(ctx context.Context) error {
	go func() {
		m.logger.Info("http server starting", "addr", m.cfg.Addr)
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			m.logger.Error("http server error", "error", err)
		}
	}()
	return nil
}

func (m *webModule) OnShutdown(ctx context.Context) error {
	drainCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := m.server.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
