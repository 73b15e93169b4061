package cmd

import (
	"context"
	"fmt"

	"game-catalog/core/config"
	"game-catalog/core/database"
	"game-catalog/core/logger"
	"game-catalog/core/storage"
	"game-catalog/feature/assets"
	"game-catalog/feature/catalog"
	"game-catalog/feature/catalog/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncStrategy    string
	syncCheckAssets bool
)

// syncCmd runs one catalog reconciliation from the command line.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the local catalog against the remote feed",
	Long: `Fetch the remote feed once and merge it into the local store.

The fetch strategy decides how local and remote are combined:

  remote_only        fetch, map, and persist the feed (default here)
  remote_else_local  fall back to the local store on feed failure
  local_only         read the local store, no network
  local_then_remote  emit local first, then refresh from the feed

Examples:
  # Refresh the local store from the feed
  sync

  # Verify what the local store currently holds
  sync --strategy local_only

  # Refresh, then verify referenced assets exist in storage
  sync --check-assets`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncStrategy, "strategy", "remote_only", "Fetch strategy to reconcile under")
	syncCmd.Flags().BoolVar(&syncCheckAssets, "check-assets", false, "Check referenced assets against object storage after reconciling")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	strategy, err := catalog.ParseFetchStrategy(syncStrategy)
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := models.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}

	feature := catalog.NewFeature(db, catalog.NewFeedClient(cfg.Catalog), strategy, l)
	defer feature.Close()

	l.Info("Starting catalog reconciliation", zap.String("strategy", strategy.String()))

	var fetched []catalog.VideogameEntity
	var fetchErr error
	err = feature.Repository().GetAllWithStrategy(ctx, strategy, func(entities []catalog.VideogameEntity, err error) {
		fetched = entities
		fetchErr = err
	})
	if err != nil {
		return fmt.Errorf("reconciliation did not run: %w", err)
	}
	if fetchErr != nil {
		return fmt.Errorf("reconciliation failed: %w", fetchErr)
	}

	favorites := 0
	for _, entity := range fetched {
		if entity.IsFavorite {
			favorites++
		}
	}
	l.Info("Reconciliation finished",
		zap.Int("videogames", len(fetched)),
		zap.Int("favorites", favorites),
	)

	if !syncCheckAssets {
		return nil
	}
	return checkAssets(ctx, cfg, feature, l)
}

// checkAssets verifies that every asset the reconciled catalog references
// exists in the storage bucket.
func checkAssets(ctx context.Context, cfg *config.Config, feature *catalog.Feature, l *zap.Logger) error {
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
	if err != nil {
		return fmt.Errorf("failed to probe asset bucket: %w", err)
	}
	if !exists {
		return fmt.Errorf("asset bucket %q does not exist", cfg.Storage.Bucket)
	}

	service := assets.NewService(
		feature.Videogames(),
		feature.Developers(),
		client,
		cfg.Storage.Bucket,
		cfg.Assets,
		l,
	)

	missing, err := service.CheckMissing(ctx)
	if err != nil {
		return fmt.Errorf("asset integrity check failed: %w", err)
	}
	for _, result := range missing {
		l.Warn("Referenced asset missing from storage",
			zap.String("key", result.Key),
			zap.Strings("referenced_by", result.ReferencedBy),
		)
	}
	if len(missing) == 0 {
		l.Info("All referenced assets present in storage")
	}
	return nil
}
