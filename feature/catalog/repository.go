package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// ErrClosed is returned for operations submitted after Close.
var ErrClosed = errors.New("repository closed")

// Repository is the public facade over the catalog pipeline. It combines
// the stores, the feed, and the coordinator, and adds the domain-specific
// operations (favorites, search).
//
// Every operation is dispatched onto a single FIFO work queue, so within one
// Repository at most one reconciliation (remote fetch + merge + persist) is
// in flight at a time; a GetAll issued while another runs queues behind it.
type Repository struct {
	videogames *VideogameStore
	developers *DeveloperStore
	feed       Feed
	coord      *Coordinator
	strategy   FetchStrategy
	logger     *zap.Logger

	jobs chan func()
	quit chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewRepository creates a repository and starts its worker.
func NewRepository(
	videogames *VideogameStore,
	developers *DeveloperStore,
	feed Feed,
	strategy FetchStrategy,
	logger *zap.Logger,
) *Repository {
	r := &Repository{
		videogames: videogames,
		developers: developers,
		feed:       feed,
		coord:      NewCoordinator(logger),
		strategy:   strategy,
		logger:     logger,
		jobs:       make(chan func(), 64),
		quit:       make(chan struct{}),
	}
	go r.work()
	return r
}

// work consumes queued jobs in submission order.
func (r *Repository) work() {
	for {
		select {
		case job := <-r.jobs:
			job()
		case <-r.quit:
			// Drain whatever was queued before shutdown.
			for {
				select {
				case job := <-r.jobs:
					job()
				default:
					return
				}
			}
		}
	}
}

// Close stops the worker after draining queued jobs. Jobs are only ever
// enqueued while the repository is open, so the drain observes every
// submitted job and no caller is left waiting.
func (r *Repository) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	close(r.quit)
}

// run submits a job to the work queue and waits for it to finish. A request
// already started cannot be aborted: cancelling the context abandons the
// wait but the job still runs to completion on the queue.
func (r *Repository) run(ctx context.Context, job func()) error {
	done := make(chan struct{})
	wrapped := func() {
		defer close(done)
		job()
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	select {
	case r.jobs <- wrapped:
		r.mu.Unlock()
	case <-ctx.Done():
		r.mu.Unlock()
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// schedule enqueues a fire-and-forget job without waiting for it. It reports
// false when the repository is closed or the queue is full. The coordinator
// uses it to run the deferred remote refresh of local-then-remote on the same
// worker as every other operation.
func (r *Repository) schedule(job func()) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return false
	}
	select {
	case r.jobs <- job:
		return true
	default:
		return false
	}
}

// GetAll fetches the catalog using the repository's configured strategy.
// See GetAllWithStrategy for the emission contract.
func (r *Repository) GetAll(ctx context.Context, emit EmitFunc) error {
	return r.GetAllWithStrategy(ctx, r.strategy, emit)
}

// GetAllWithStrategy fetches the catalog under an explicit strategy.
//
// Results arrive through emit. Under StrategyLocalThenRemote emit may be
// invoked a second time, after this method has returned, once the
// background refresh completes; callers must tolerate zero, one, or two
// invocations.
func (r *Repository) GetAllWithStrategy(ctx context.Context, strategy FetchStrategy, emit EmitFunc) error {
	return r.run(ctx, func() {
		r.coord.FetchAll(ctx, strategy, r.videogames.GetAll, r.refresh, r.schedule, emit)
	})
}

// refresh performs one reconciliation: fetch the feed, map the wire records,
// and persist developers before videogames.
//
// Unmappable records are dropped and counted, never fatal; a batch where
// nothing survives mapping is an empty success. A developer persistence
// failure aborts the videogame save and escalates, because the denormalized
// developer copies would otherwise go inconsistent. A videogame persistence
// failure is logged but the fetched entities are still returned.
func (r *Repository) refresh(ctx context.Context) ([]VideogameEntity, error) {
	raw, err := r.feed.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	entities := make([]VideogameEntity, 0, len(raw))
	dropped := 0
	for _, record := range raw {
		entity, ok := WireToEntity(record)
		if !ok {
			dropped++
			continue
		}
		entities = append(entities, entity)
	}
	if dropped > 0 {
		r.logger.Warn("Dropped wire records with missing required fields",
			zap.Int("dropped", dropped),
			zap.Int("received", len(raw)))
	}
	if len(raw) > 0 && len(entities) == 0 {
		r.logger.Warn("Received wire records but none survived mapping")
		return entities, nil
	}

	developers := dedupeDevelopers(entities)
	if err := r.developers.UpsertAll(ctx, developers); err != nil {
		r.logger.Error("Developer persistence failed, aborting videogame save", zap.Error(err))
		return nil, err
	}

	if err := r.videogames.UpsertAll(ctx, entities); err != nil {
		// Still return what was fetched; the cache is just stale.
		r.logger.Error("Videogame persistence failed", zap.Error(err))
	}

	return entities, nil
}

// dedupeDevelopers collects the unique developers referenced by a batch,
// keeping first-occurrence order.
func dedupeDevelopers(entities []VideogameEntity) []DeveloperEntity {
	seen := make(map[string]struct{}, len(entities))
	developers := make([]DeveloperEntity, 0, len(entities))
	for _, entity := range entities {
		if _, ok := seen[entity.Developer.Name]; ok {
			continue
		}
		seen[entity.Developer.Name] = struct{}{}
		developers = append(developers, entity.Developer)
	}
	return developers
}

// GetByID returns the videogame stored under the given title.
func (r *Repository) GetByID(ctx context.Context, id string) (VideogameEntity, error) {
	var entity VideogameEntity
	var err error
	if runErr := r.run(ctx, func() {
		entity, err = r.videogames.GetByID(ctx, id)
	}); runErr != nil {
		return VideogameEntity{}, runErr
	}
	return entity, err
}

// Save persists a single videogame locally, developer first, and returns
// the stored entity re-read by its business key. There is no remote
// write-back; the feed is read-only.
func (r *Repository) Save(ctx context.Context, entity VideogameEntity) (VideogameEntity, error) {
	var saved VideogameEntity
	var err error
	if runErr := r.run(ctx, func() {
		if err = r.developers.UpsertAll(ctx, []DeveloperEntity{entity.Developer}); err != nil {
			r.logger.Error("Developer save failed, aborting videogame save",
				zap.String("developer", entity.Developer.Name), zap.Error(err))
			return
		}
		if err = r.videogames.UpsertAll(ctx, []VideogameEntity{entity}); err != nil {
			return
		}
		saved, err = r.videogames.GetByID(ctx, entity.ID)
	}); runErr != nil {
		return VideogameEntity{}, runErr
	}
	return saved, err
}

// Delete removes the videogame stored under the given title.
func (r *Repository) Delete(ctx context.Context, id string) error {
	var err error
	if runErr := r.run(ctx, func() {
		err = r.videogames.DeleteByID(ctx, id)
	}); runErr != nil {
		return runErr
	}
	return err
}

// GetFavorites returns the locally flagged favorites.
func (r *Repository) GetFavorites(ctx context.Context) ([]VideogameEntity, error) {
	var entities []VideogameEntity
	var err error
	if runErr := r.run(ctx, func() {
		entities, err = r.videogames.FetchFavorites(ctx)
	}); runErr != nil {
		return nil, runErr
	}
	return entities, err
}

// UpdateFavorite flips the favorite flag for a title and returns the
// updated entity.
func (r *Repository) UpdateFavorite(ctx context.Context, id string, isFavorite bool) (VideogameEntity, error) {
	var entity VideogameEntity
	var err error
	if runErr := r.run(ctx, func() {
		entity, err = r.videogames.UpdateFavoriteStatus(ctx, id, isFavorite)
	}); runErr != nil {
		return VideogameEntity{}, runErr
	}
	return entity, err
}

// SearchByDeveloper returns videogames whose developer name contains the
// query, case-insensitively. The filter runs in memory over a full local
// fetch, which is O(n) per search; fine for catalog-sized data.
func (r *Repository) SearchByDeveloper(ctx context.Context, developerName string) ([]VideogameEntity, error) {
	var matches []VideogameEntity
	var err error
	if runErr := r.run(ctx, func() {
		var all []VideogameEntity
		all, err = r.videogames.GetAll(ctx)
		if err != nil {
			return
		}
		query := strings.ToLower(developerName)
		for _, entity := range all {
			if strings.Contains(strings.ToLower(entity.Developer.Name), query) {
				matches = append(matches, entity)
			}
		}
	}); runErr != nil {
		return nil, runErr
	}
	return matches, err
}

// SearchByReleaseYear returns videogames whose raw release date starts with
// the given year string. In-memory O(n) filter, like SearchByDeveloper.
func (r *Repository) SearchByReleaseYear(ctx context.Context, year string) ([]VideogameEntity, error) {
	var matches []VideogameEntity
	var err error
	if runErr := r.run(ctx, func() {
		var all []VideogameEntity
		all, err = r.videogames.GetAll(ctx)
		if err != nil {
			return
		}
		for _, entity := range all {
			if strings.HasPrefix(entity.ReleaseDateRaw, year) {
				matches = append(matches, entity)
			}
		}
	}); runErr != nil {
		return nil, runErr
	}
	return matches, err
}

// Developers returns all stored developers.
func (r *Repository) Developers(ctx context.Context) ([]DeveloperEntity, error) {
	var entities []DeveloperEntity
	var err error
	if runErr := r.run(ctx, func() {
		entities, err = r.developers.GetAll(ctx)
	}); runErr != nil {
		return nil, runErr
	}
	return entities, err
}
