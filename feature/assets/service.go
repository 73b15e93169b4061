package assets

import (
	"context"
	"time"

	"game-catalog/core/reconcile"
	"game-catalog/core/storage"

	"go.uber.org/zap"
)

// Report is the outcome of an integrity check.
type Report struct {
	Summary reconcile.Summary  `json:"summary"`
	Results []reconcile.Result `json:"results"`
}

// Service runs asset integrity checks against object storage.
type Service struct {
	spec   *reconcile.Spec
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(videogames VideogameSource, developers DeveloperSource, client storage.Client, bucket string, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		spec: &reconcile.Spec{
			Adapter:       &catalogAdapter{videogames: videogames, developers: developers},
			CacheTTL:      time.Duration(cfg.CacheTTLSeconds) * time.Second,
			StoragePrefix: cfg.Prefix,
		},
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Check compares the catalog's asset references against the bucket contents
// and returns the full report.
func (s *Service) Check(ctx context.Context) (Report, error) {
	results, summary, err := reconcile.CompareAll(ctx, s.spec, s.client, s.bucket)
	if err != nil {
		return Report{}, err
	}

	s.logger.Info("Asset integrity check finished",
		zap.Int("total_keys", summary.TotalKeys),
		zap.Int("missing_storage", summary.MissingStorage),
		zap.Int("orphan_storage", summary.OrphanStorage),
	)

	return Report{Summary: summary, Results: results}, nil
}

// CheckMissing returns only the assets the catalog references but storage
// lacks. This is the actionable subset for operators.
func (s *Service) CheckMissing(ctx context.Context) ([]reconcile.Result, error) {
	report, err := s.Check(ctx)
	if err != nil {
		return nil, err
	}

	var missing []reconcile.Result
	for _, result := range report.Results {
		if result.CatalogPresent && !result.StoragePresent {
			missing = append(missing, result)
		}
	}
	return missing, nil
}

// Invalidate drops the cached comparison indices so the next check rebuilds
// them from scratch.
func (s *Service) Invalidate() {
	reconcile.InvalidateCache(s.spec)
}
