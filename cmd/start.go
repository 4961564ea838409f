package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"stock-sync/core/loader"
	"stock-sync/core/logger"
	"stock-sync/core/middleware/auth"
	"stock-sync/core/middleware/rayid"

	"stock-sync/feature/integrity"
	"stock-sync/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "stock-sync/docs/swagger"
)

// @title Stock Sync API
// @version 1.0
// @description Reconciles official store inventory spreadsheets against vendor stock feeds.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciliation server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger, ledger database and archive
		a, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := a.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// 2. Archive roots and retention
		for _, s := range a.archive.Stores() {
			if err := s.Ensure(ctx); err != nil {
				logg.Warn("Failed to prepare archive root", zap.String("root", s.Root()), zap.Error(err))
			}
		}
		sweeper := a.sweeper()
		if every := a.cfg.Archive.SweepInterval(); every > 0 {
			logg.Info("Scheduled retention sweep", zap.Duration("every", every), zap.Duration("retention", sweeper.Retention()))
			go sweeper.Run(ctx, every)
		}

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             a.cfg.Server.BodyLimit(),
		})

		// 4. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(inventory.NewFeature(a.archive, sweeper, logg, a.db))
		mgr.Register(integrity.NewFeature(a.archive, a.db, logg))

		// Middleware Registration
		// RayID first so every log line can be traced
		app.Use(rayid.New())

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

		// Swagger documentation is public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

		// 5. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			if err := app.Listen(a.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
