package catalog

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
)

// FetchStrategy selects how the local and remote sources are consulted and
// merged for a read.
type FetchStrategy int

const (
	// StrategyRemoteElseLocal attempts the remote feed first and falls
	// back to the local store when the fetch fails or yields nothing.
	// This is the default.
	StrategyRemoteElseLocal FetchStrategy = iota
	// StrategyLocalOnly reads the local store only.
	StrategyLocalOnly
	// StrategyRemoteOnly fetches remote, persists, and returns the
	// fetched entities.
	StrategyRemoteOnly
	// StrategyLocalThenRemote returns the local result immediately and
	// refreshes from remote in the background. The caller's emit callback
	// may run twice: once with local data, once with the refreshed data.
	StrategyLocalThenRemote
)

// String returns the strategy's configuration name.
func (s FetchStrategy) String() string {
	switch s {
	case StrategyLocalOnly:
		return "local_only"
	case StrategyRemoteOnly:
		return "remote_only"
	case StrategyLocalThenRemote:
		return "local_then_remote"
	default:
		return "remote_else_local"
	}
}

// ParseFetchStrategy maps a configuration string to a FetchStrategy.
func ParseFetchStrategy(raw string) (FetchStrategy, error) {
	switch raw {
	case "local_only":
		return StrategyLocalOnly, nil
	case "remote_only":
		return StrategyRemoteOnly, nil
	case "local_then_remote":
		return StrategyLocalThenRemote, nil
	case "remote_else_local", "":
		return StrategyRemoteElseLocal, nil
	default:
		return StrategyRemoteElseLocal, fmt.Errorf("unknown fetch strategy %q", raw)
	}
}

// EmitFunc receives fetch results. Implementations must tolerate being
// invoked zero, one, or two times for a single logical request; the second
// invocation only occurs under StrategyLocalThenRemote.
type EmitFunc func(entities []VideogameEntity, err error)

// Coordinator orchestrates the fetch policies. Each policy is a stateless
// recipe over two injected operations: local reads the store, refresh
// performs the remote fetch/map/persist round trip. The coordinator retains
// no state between calls beyond background-refresh deduplication.
type Coordinator struct {
	logger        *zap.Logger
	refreshQueued atomic.Bool
}

// NewCoordinator creates a coordinator.
func NewCoordinator(logger *zap.Logger) *Coordinator {
	return &Coordinator{logger: logger}
}

// FetchAll runs one fetch according to the given strategy.
//
// Under StrategyLocalThenRemote the method returns after the first emission
// and hands the remote refresh to schedule, so it runs on the same serialized
// queue as every other operation rather than racing it on a goroutine of its
// own. The deferred refresh emits a second time on success; a refresh failure
// is logged, never surfaced, since the caller already holds the local-phase
// result.
func (c *Coordinator) FetchAll(
	ctx context.Context,
	strategy FetchStrategy,
	local func(ctx context.Context) ([]VideogameEntity, error),
	refresh func(ctx context.Context) ([]VideogameEntity, error),
	schedule func(job func()) bool,
	emit EmitFunc,
) {
	switch strategy {
	case StrategyLocalOnly:
		emit(local(ctx))

	case StrategyRemoteOnly:
		emit(refresh(ctx))

	case StrategyLocalThenRemote:
		emit(local(ctx))
		c.queueRefresh(schedule, refresh, emit)

	default: // StrategyRemoteElseLocal
		entities, err := refresh(ctx)
		if err != nil {
			c.logger.Warn("Remote fetch failed, falling back to local", zap.Error(err))
			emit(local(ctx))
			return
		}
		if len(entities) == 0 {
			// An empty-but-successful feed is treated like a failure so
			// an empty response cannot silently wipe the visible catalog.
			c.logger.Warn("Remote fetch returned no entities, falling back to local")
			emit(local(ctx))
			return
		}
		emit(entities, nil)
	}
}

// queueRefresh schedules the remote phase of local-then-remote. At most one
// refresh is queued or running at a time; requests arriving while one is
// pending are dropped, since their callers already hold a local-phase
// emission and the pending refresh covers the same work.
func (c *Coordinator) queueRefresh(
	schedule func(job func()) bool,
	refresh func(ctx context.Context) ([]VideogameEntity, error),
	emit EmitFunc,
) {
	if !c.refreshQueued.CompareAndSwap(false, true) {
		return
	}
	queued := schedule(func() {
		defer c.refreshQueued.Store(false)
		// Deliberately not the caller's context: the first emission already
		// returned, and cancelling the caller must not abort the cache update.
		entities, err := refresh(context.Background())
		if err != nil {
			c.logger.Warn("Background remote refresh failed", zap.Error(err))
			return
		}
		c.logger.Info("Local cache refreshed from remote", zap.Int("count", len(entities)))
		emit(entities, nil)
	})
	if !queued {
		c.refreshQueued.Store(false)
	}
}
