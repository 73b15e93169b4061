package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"game-catalog/core/config"
	"game-catalog/core/database"
	"game-catalog/core/loader"
	"game-catalog/core/logger"
	"game-catalog/core/middleware/auth"
	"game-catalog/core/middleware/rayid"
	"game-catalog/core/storage"

	"game-catalog/feature/assets"
	"game-catalog/feature/catalog"
	"game-catalog/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "game-catalog/docs/swagger"
)

// @title Game Catalog API
// @version 1.0
// @description API for browsing and reconciling the videogame catalog.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the game catalog server",
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

		// 3. Connect to Database
		// The catalog cannot serve without its durable store.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := models.Migrate(db); err != nil {
			logg.Fatal("Failed to migrate catalog schema", zap.Error(err))
		}
		verifyCatalogSchema(db, logg)
		logg.Info("Connected to catalog database", zap.String("driver", cfg.Database.Driver))

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Storage (Optional)
		// Asset integrity checks stay dormant without a storage client.
		var store storage.Client
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage client creation failed", zap.Error(err))
		} else {
			store = client
		}

		// 6. Build the catalog pipeline
		catalogFeature, err := newCatalogFeature(db, cfg, logg)
		if err != nil {
			logg.Fatal("Failed to build catalog feature", zap.Error(err))
		}
		defer catalogFeature.Close()

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(catalogFeature)
		mgr.Register(assets.NewFeature(
			catalogFeature.Videogames(),
			catalogFeature.Developers(),
			store,
			cfg.Storage.Bucket,
			cfg.Assets,
			logg,
		))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
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

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Start Server
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

// verifyCatalogSchema sanity-checks the migrated table. The favorite flag
// is store-only state that upserts must preserve; serving without its
// column would silently lose it.
func verifyCatalogSchema(db *gorm.DB, l *zap.Logger) {
	columns, err := database.GetTableColumns(db, "videogame_records")
	if err != nil {
		l.Warn("Could not inspect catalog schema", zap.Error(err))
		return
	}

	found := false
	for _, col := range columns {
		if col.Field == "is_favorite" {
			found = true
			break
		}
	}
	if !found {
		l.Fatal("Catalog schema is missing the is_favorite column")
	}
	l.Info("Catalog schema verified", zap.Int("columns", len(columns)))
}

// newCatalogFeature wires the catalog feature from configuration: parsed
// default strategy, feed client, and the store pipeline over the database.
func newCatalogFeature(db *gorm.DB, cfg *config.Config, l *zap.Logger) (*catalog.Feature, error) {
	strategy, err := catalog.ParseFetchStrategy(cfg.Catalog.Strategy)
	if err != nil {
		return nil, err
	}
	feed := catalog.NewFeedClient(cfg.Catalog)
	return catalog.NewFeature(db, feed, strategy, l), nil
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
