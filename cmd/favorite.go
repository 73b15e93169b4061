package cmd

import (
	"context"
	"fmt"

	"game-catalog/core/config"
	"game-catalog/core/database"
	"game-catalog/core/logger"
	"game-catalog/feature/catalog"
	"game-catalog/feature/catalog/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	unsetFavorite bool
	listFavorites bool
)

// favoriteCmd toggles or lists the local-only favorite flag.
var favoriteCmd = &cobra.Command{
	Use:   "favorite [title]",
	Short: "Mark a videogame as favorite, or list favorites",
	Long: `Set or clear the favorite flag on a videogame by its title.

The flag lives only in the local store and survives feed refreshes.

Examples:
  # Mark a game
  favorite "Minecraft"

  # Unmark it
  favorite "Minecraft" --unset

  # List all favorites
  favorite --list`,
	RunE: runFavorite,
}

func init() {
	favoriteCmd.Flags().BoolVar(&unsetFavorite, "unset", false, "Clear the favorite flag instead of setting it")
	favoriteCmd.Flags().BoolVar(&listFavorites, "list", false, "List favorite videogames")
	RootCmd.AddCommand(favoriteCmd)
}

func runFavorite(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if !listFavorites && len(args) != 1 {
		return fmt.Errorf("expected a videogame title (or --list)")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := models.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}

	strategy, err := catalog.ParseFetchStrategy(cfg.Catalog.Strategy)
	if err != nil {
		return err
	}
	feature := catalog.NewFeature(db, catalog.NewFeedClient(cfg.Catalog), strategy, l)
	defer feature.Close()
	repo := feature.Repository()

	if listFavorites {
		favorites, err := repo.GetFavorites(ctx)
		if err != nil {
			return fmt.Errorf("failed to list favorites: %w", err)
		}
		if len(favorites) == 0 {
			l.Info("No favorites stored")
			return nil
		}
		for _, entity := range favorites {
			l.Info("Favorite",
				zap.String("title", entity.Title),
				zap.String("developer", entity.Developer.Name),
				zap.String("release_year", entity.ReleaseYear()),
			)
		}
		return nil
	}

	title := args[0]
	entity, err := repo.UpdateFavorite(ctx, title, !unsetFavorite)
	if err != nil {
		if catalog.IsNotFound(err) {
			return fmt.Errorf("no videogame stored under title %q", title)
		}
		return fmt.Errorf("failed to update favorite flag: %w", err)
	}

	l.Info("Favorite flag updated",
		zap.String("title", entity.Title),
		zap.Bool("is_favorite", entity.IsFavorite),
	)
	return nil
}
