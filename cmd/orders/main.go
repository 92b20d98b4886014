package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/nmehta6/stagehand/actuator"
	"github.com/nmehta6/stagehand/config"
	"github.com/nmehta6/stagehand/config/source"
	"github.com/nmehta6/stagehand/core"
	"github.com/nmehta6/stagehand/logging"
	"github.com/nmehta6/stagehand/web"
)

func main() {
	ctx := context.Background()

	// 1) config: file < env < cli
	store, err := config.Load(ctx,
		&source.FileSource{BasePath: "configs", Profile: os.Getenv("APP_PROFILE")},
		&source.EnvSource{},
		&source.CLISource{},
	)
	if err != nil {
		panic(err)
	}
	rt := store.Runtime()

	// 2) logging
	logger := logging.New(rt.Logging.Level, rt.Debug).With(
		slog.String("app", rt.App.Name),
		slog.String("version", rt.App.Version),
	)

	// 3) the registry
	reg := core.NewRegistry(logger,
		core.WithConfigStore(store),
		core.WithSettings(core.Settings(store.Settings())),
		core.WithDebug(rt.Debug),
		core.WithBootstrapDelay(rt.Bootstrap.Delay),
	)
	core.Put[*slog.Logger](reg.Container(), logger)
	core.Put[config.AppInfo](reg.Container(), rt.App)

	// 4) modules
	err = reg.RegisterModules(
		web.New(
			web.WithRoutes(func(r web.Router) {
				r.GET("/hello", func(c *gin.Context) {
					c.JSON(200, gin.H{"message": "world"})
				})
			}),
		),
		actuator.New(),
	)
	if err != nil {
		logger.Error("module registration failed", "error", err)
		os.Exit(1)
	}

	// 5) bootstrap, wait for signal, shut down
	if err := reg.BootstrapAllModules(ctx); err != nil {
		logger.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	if err := reg.ShutdownAllModules(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
