package assets

import (
	"game-catalog/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface for asset integrity.
type Feature struct {
	service *Service
	handler *Handler
	client  storage.Client
}

// NewFeature wires the integrity service over the catalog stores and the
// storage client.
func NewFeature(videogames VideogameSource, developers DeveloperSource, client storage.Client, bucket string, cfg Config, logger *zap.Logger) *Feature {
	service := NewService(videogames, developers, client, bucket, cfg, logger)
	return &Feature{
		service: service,
		handler: NewHandler(service, logger),
		client:  client,
	}
}

// Service exposes the integrity service for commands.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "assets"
}

// IsEnabled checks if the feature is enabled. Integrity checks need a
// storage client; without one the feature stays dormant.
func (f *Feature) IsEnabled() bool {
	return f.client != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
