package actuator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nmehta6/stagehand/config"
	"github.com/nmehta6/stagehand/core"
	"github.com/nmehta6/stagehand/web"
)

const Name = "actuator"

// Config is the optional "actuator" configuration section.
type Config struct {
	BasePath       string `config:"basePath"`
	MetricsEnabled bool   `config:"metricsEnabled"`
}

// New builds the management-endpoints module: health, info and Prometheus
// metrics mounted on the web module's engine. Readiness flips only once the
// whole bootstrap phase has settled.
func New() core.Module { return &module{} }

type module struct {
	cfg   Config
	app   config.AppInfo
	ready prometheus.Gauge
}

func (m *module) Name() string                    { return Name }
func (m *module) DependentModuleNames() []string  { return []string{web.Name} }
func (m *module) IgnoreMissingDependencies() bool { return false }
func (m *module) ConfigurationName() string       { return Name }
func (m *module) IsConfigurationRequired() bool   { return false }

func (m *module) Init(opts core.InitOptions) error {
	m.cfg = Config{BasePath: "/actuator", MetricsEnabled: true}
	if opts.Config != nil {
		if err := config.NewBinder().Bind(opts.Config, &m.cfg); err != nil {
			return fmt.Errorf("actuator config: %w", err)
		}
	}
	if app, ok := core.Lookup[config.AppInfo](opts.Container); ok {
		m.app = app
	}

	m.ready = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "app_ready",
		Help: "1 once every module has finished bootstrapping.",
	})
	if err := prometheus.Register(m.ready); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return err
		}
		m.ready = already.ExistingCollector.(prometheus.Gauge)
	}

	engine := web.Engine(opts.Container)
	group := engine.Group(m.cfg.BasePath)

	group.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	group.GET("/info", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"app": gin.H{
				"name":    m.app.Name,
				"version": m.app.Version,
			},
			"runtime": gin.H{
				"go":           runtime.Version(),
				"numGoroutine": runtime.NumGoroutine(),
				"time":         time.Now().UTC().Format(time.RFC3339),
				"pid":          os.Getpid(),
			},
		})
	})

	if m.cfg.MetricsEnabled {
		group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	return nil
}

func (m *module) OnBootstrap(ctx context.Context) error { return nil }

func (m *module) AfterBootstrap(ctx context.Context) error {
	m.ready.Set(1)
	return nil
}

func (m *module) OnShutdown(ctx context.Context) error {
	m.ready.Set(0)
	return nil
}
