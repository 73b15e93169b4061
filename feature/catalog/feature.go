package catalog

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface for the catalog.
type Feature struct {
	repo    *Repository
	handler *Handler
	db      *gorm.DB
}

// NewFeature wires the catalog pipeline: stores over the database handle,
// the feed client, the repository, and its HTTP handler.
func NewFeature(db *gorm.DB, feed Feed, strategy FetchStrategy, logger *zap.Logger) *Feature {
	store := NewStore(db, logger)
	repo := NewRepository(
		NewVideogameStore(store),
		NewDeveloperStore(store),
		feed,
		strategy,
		logger,
	)
	return &Feature{
		repo:    repo,
		handler: NewHandler(repo, logger),
		db:      db,
	}
}

// Repository exposes the repository for other features and commands.
func (f *Feature) Repository() *Repository {
	return f.repo
}

// Videogames exposes the local videogame store for other features.
func (f *Feature) Videogames() *VideogameStore {
	return f.repo.videogames
}

// Developers exposes the local developer store for other features.
func (f *Feature) Developers() *DeveloperStore {
	return f.repo.developers
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled checks if the feature is enabled. The catalog cannot run
// without its database.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Close stops the repository worker.
func (f *Feature) Close() {
	f.repo.Close()
}
