package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"asset-registry/core/loader"
	"asset-registry/core/logger"
	"asset-registry/core/middleware/auth"
	"asset-registry/core/middleware/rayid"
	"asset-registry/feature/backup"
	"asset-registry/feature/integrity"
	"asset-registry/feature/registry"
	"asset-registry/feature/scan"
	scanReconcile "asset-registry/feature/scan/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "asset-registry/docs/swagger"
)

// @title Asset Registry API
// @version 1.0
// @description API for the asset inventory registry and spreadsheet reconciliation.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the asset registry server",
	Long:  `Starts the HTTP server, the recurring spreadsheet scan and the scheduled database backup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		// 1. Load configuration, logger and database
		e, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer e.close()
		logg := e.logger
		zap.ReplaceGlobals(logg)
		logg.Info("Connected to registry database", zap.String("driver", e.cfg.Database.Driver))

		// 2. Optional backends
		client, err := e.storageClient(ctx)
		if err != nil {
			logg.Warn("Optional object storage unavailable", zap.Error(err))
			client = nil
		}

		var mirror scan.Mirror
		if kv, err := e.cacheClient(ctx); err != nil {
			logg.Warn("Optional cache connection failed", zap.Error(err))
		} else if kv != nil {
			defer kv.Close()
			mirror = scan.NewRedisMirror(kv, e.cfg.Scan.MirrorKey)
			logg.Info("Mirroring scan results to redis", zap.String("addr", e.cfg.Cache.Addr))
		}

		// 3. Metrics registry
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		// 4. Services
		regFeature := registry.NewFeature(e.store, e.cfg.Spreadsheet, client, e.cfg.Storage.Bucket, logg)
		scheduler := scan.NewScheduler(e.cfg.Scan, scanReconcile.NewAdapter(e.store), mirror, scan.NewMetrics(reg), logg)
		backups := backup.NewService(e.db, e.cfg.Backup, client, e.cfg.Storage.Bucket, logg)
		checks := integrity.NewService(client, e.cfg.Storage.Bucket, e.db, integrity.Options{
			Folders: []string{e.cfg.Backup.Prefix, e.cfg.Spreadsheet.ExportPrefix},
			Paths:   append([]string{e.cfg.Spreadsheet.Source, e.cfg.Spreadsheet.Template}, e.cfg.Scan.Directories...),
		}, logg)

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 6. Feature Loader
		mgr := loader.NewManager()
		mgr.Register(regFeature)
		mgr.Register(scan.NewFeature(scheduler, logg))
		backupFeature := backup.NewFeature(backups)
		mgr.Register(backupFeature)
		mgr.Register(integrity.NewFeature(checks))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with RayID
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
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

		// 3. Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: e.cfg.Server.ApiKey, Skip: []string{"/swagger", "/health", "/metrics"}}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}

		// 8. Background jobs
		if err := scheduler.Start(); err != nil {
			return err
		}
		defer scheduler.Stop()

		if backupFeature.IsEnabled() {
			if err := backups.Start(); err != nil {
				return err
			}
			defer backups.Stop()
		} else if e.cfg.Backup.Enabled {
			logg.Info("Scheduled backup skipped", zap.String("driver", e.cfg.Database.Driver))
		}

		// 9. Start Server
		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", e.cfg.Server.Port))
			errCh <- app.Listen(e.cfg.Server.Addr())
		}()

		// 10. Graceful Shutdown
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-sig:
		}

		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(e.cfg.Server.ShutdownTimeout())
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
