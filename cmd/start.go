package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"speedtab/core/config"
	"speedtab/core/loader"
	"speedtab/core/logger"
	"speedtab/core/markup"
	"speedtab/core/middleware/auth"
	"speedtab/core/middleware/rayid"
	"speedtab/core/proxy"
	"speedtab/core/storage"
	"speedtab/feature/bridge"
	"speedtab/feature/tab"
	"speedtab/feature/tab/tabconfig"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the SpeedTab service",
	Long:  `Loads the tab configuration, starts the proxy bridge and reloads on SIGHUP or file changes.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// 3. Configuration Source
		source, err := newSource(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to create configuration source", zap.Error(err))
		}

		// 4. Proxy Runtime and Engine
		registry := proxy.NewRegistry(logg)
		perms := proxy.NewStaticPermissions(cfg.Permissions)
		engine := tab.NewEngine(source, tab.RegistryRoster(registry), markup.NewParser(), logg)

		report := engine.Reload(ctx)
		if report.LoadErr != nil {
			logg.Warn("Starting with built-in tab defaults", zap.Error(report.LoadErr))
		}

		registry.Subscribe(engine.Handle)
		registry.RegisterCommand(tab.ReloadCommandName, tab.NewReloadCommand(engine, perms, logg))

		if cfg.Tab.Watch && cfg.Tab.Source == tab.SourceFile {
			watcher := tab.NewWatcher(cfg.Tab.Path(), cfg.Tab.WatchDebounce(), engine, logg)
			go func() {
				if err := watcher.Run(ctx); err != nil {
					logg.Error("Config watcher stopped", zap.Error(err))
				}
			}()
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(bridge.NewFeature(registry, logg))
		mgr.Register(tab.NewFeature(engine, logg))

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Debug("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Signals: SIGHUP reloads, SIGINT/SIGTERM shut down
		console := proxy.NewConsoleSource(logg)
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
		for sig := range c {
			if sig == syscall.SIGHUP {
				if err := registry.ExecuteCommand(ctx, tab.ReloadCommandName, console); err != nil {
					logg.Error("Reload on SIGHUP failed", zap.Error(err))
				}
				continue
			}
			break
		}

		logg.Info("Shutting down server...", zap.Int("players", registry.Count()))
		cancel()
		_ = app.Shutdown()
	},
}

// newSource builds the configuration source selected by tab.source.
func newSource(cfg *config.Config, logg *zap.Logger) (tabconfig.Source, error) {
	if !cfg.Tab.IsValidSource() {
		return nil, fmt.Errorf("unknown tab source %q", cfg.Tab.Source)
	}

	if cfg.Tab.Source == tab.SourceStorage {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return tabconfig.NewObjectSource(store, cfg.Storage.Bucket, cfg.Tab.Object, logg), nil
	}
	return tabconfig.NewFileSource(cfg.Tab.DataDir, cfg.Tab.File, logg), nil
}

func init() {
	RootCmd.AddCommand(startCmd)
}
