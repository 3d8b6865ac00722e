package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"catalog-engine/core/cache"
	"catalog-engine/core/config"
	"catalog-engine/core/database"
	"catalog-engine/core/loader"
	"catalog-engine/core/logger"
	"catalog-engine/core/middleware/auth"
	"catalog-engine/core/middleware/rayid"
	"catalog-engine/core/storage"

	"catalog-engine/feature/catalog"
	"catalog-engine/feature/catalog/models"
	"catalog-engine/feature/catalog/source"
	"catalog-engine/feature/status"
	"catalog-engine/feature/status/checks"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "catalog-engine/docs/swagger"
)

// @title Catalog Engine API
// @version 1.0
// @description API for the unified avatar clothing catalog.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog engine server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
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

		// 3. Connect to Database (Optional)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to cache database")
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Select Cache Store
		var cacheStore cache.Store = cache.NewMemoryStore()
		if cfg.Cache.Backend == cache.BackendDatabase {
			if db == nil {
				logg.Warn("Database cache backend configured without a database, using memory")
			} else if gs, err := cache.NewGormStore(db); err != nil {
				logg.Warn("Failed to initialize database cache store, using memory", zap.Error(err))
			} else {
				cacheStore = gs
				logg.Info("Using database cache store")
			}
		}
		responseCache := cache.New(cacheStore, nil, logg)

		// 6. Build Source Adapters (priority order)
		sources := []source.Source{
			source.NewFigureDataSource(cfg.Sources.FigureData, store, cfg.Storage.Bucket, logg),
			source.NewWidgetsSource(cfg.Sources.Widgets, logg),
		}
		if cfg.Sources.Synthetic.Enabled {
			sources = append(sources, source.NewSyntheticSource(cfg.Sources.Synthetic))
		} else {
			logg.Warn("Synthetic fallback disabled, total upstream outage will fail requests")
		}

		// 7. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 8. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(catalog.NewFeature(sources, responseCache, logg))
		mgr.Register(status.NewFeature(sourceProbes(cfg), store, cfg.Storage.Bucket,
			cfg.Sources.FigureData.SnapshotObject, db, logg))

		// Middleware Registration
		// RayID must be first to trace everything
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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 9. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 10. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// sourceProbes derives the reachability probe list from the configured
// source endpoints. The synthetic generator is local and needs none.
func sourceProbes(cfg *config.Config) []checks.Probe {
	var probes []checks.Probe

	urls := cfg.Sources.FigureData.URLs
	if len(urls) == 0 {
		urls = source.DefaultFigureDataURLs
	}
	for _, u := range urls {
		probes = append(probes, checks.Probe{
			Family: string(models.SourceAuthoritative),
			URL:    u,
		})
	}

	if cfg.Sources.Widgets.BaseURL != "" {
		probes = append(probes, checks.Probe{
			Family: string(models.SourceScraped),
			URL:    cfg.Sources.Widgets.BaseURL,
		})
	}

	return probes
}

func init() {
	RootCmd.AddCommand(startCmd)
}
