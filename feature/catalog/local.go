package catalog

import (
	"context"
	"errors"
	"sync"

	"game-catalog/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store owns the session discipline over the durable store: a single
// writer at a time, any number of concurrent readers, and readers never
// observing uncommitted writer changes (every write runs inside its own
// transaction). Both entity stores share one Store so the discipline
// covers the whole database, not one table.
type Store struct {
	db     *gorm.DB
	mu     sync.RWMutex
	logger *zap.Logger
}

// NewStore wraps a database handle with the catalog session discipline.
func NewStore(db *gorm.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// read runs fn inside a read session.
func (s *Store) read(ctx context.Context, fn func(tx *gorm.DB) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.db.WithContext(ctx))
}

// write runs fn inside a write session. The enclosing transaction makes the
// batch atomic: a commit failure rolls everything back.
func (s *Store) write(ctx context.Context, fn func(tx *gorm.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.WithContext(ctx).Transaction(fn)
}

// VideogameStore is the local store adapter for videogames.
type VideogameStore struct {
	store *Store
}

// NewVideogameStore creates a videogame store over the shared session core.
func NewVideogameStore(store *Store) *VideogameStore {
	return &VideogameStore{store: store}
}

// GetAll returns every stored videogame.
func (s *VideogameStore) GetAll(ctx context.Context) ([]VideogameEntity, error) {
	var recs []models.VideogameRecord
	err := s.store.read(ctx, func(tx *gorm.DB) error {
		return tx.Order("title").Find(&recs).Error
	})
	if err != nil {
		return nil, StorageError(err)
	}

	entities := make([]VideogameEntity, 0, len(recs))
	for _, rec := range recs {
		entities = append(entities, RecordToEntity(rec))
	}
	return entities, nil
}

// GetByID returns the videogame stored under the given title.
func (s *VideogameStore) GetByID(ctx context.Context, id string) (VideogameEntity, error) {
	var rec models.VideogameRecord
	err := s.store.read(ctx, func(tx *gorm.DB) error {
		return tx.First(&rec, "title = ?", id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return VideogameEntity{}, NotFoundError(id)
	}
	if err != nil {
		return VideogameEntity{}, StorageError(err)
	}
	return RecordToEntity(rec), nil
}

// UpsertAll persists a batch of videogames keyed by title.
//
// Existing records are updated in place; the favorite flag of an existing
// record is preserved rather than taken from the incoming entity. Release
// dates that fail to parse are logged and cleared, never fatal. The commit
// is atomic: if it fails, the whole batch rolls back with a storage error.
func (s *VideogameStore) UpsertAll(ctx context.Context, entities []VideogameEntity) error {
	err := s.store.write(ctx, func(tx *gorm.DB) error {
		for _, entity := range entities {
			var existing *models.VideogameRecord
			var found models.VideogameRecord
			lookupErr := tx.First(&found, "title = ?", entity.ID).Error
			if lookupErr == nil {
				existing = &found
			} else if !errors.Is(lookupErr, gorm.ErrRecordNotFound) {
				return lookupErr
			}

			rec, dateOK := EntityToRecord(entity, existing)
			if !dateOK && entity.ReleaseDateRaw != "" {
				s.store.logger.Warn("Unparseable release date, clearing stored date",
					zap.String("title", entity.Title),
					zap.String("release_date", entity.ReleaseDateRaw))
			}

			if err := tx.Save(&rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return StorageError(err)
	}
	return nil
}

// DeleteByID removes the videogame stored under the given title.
func (s *VideogameStore) DeleteByID(ctx context.Context, id string) error {
	err := s.store.write(ctx, func(tx *gorm.DB) error {
		result := tx.Delete(&models.VideogameRecord{}, "title = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError(id)
	}
	if err != nil {
		return StorageError(err)
	}
	return nil
}

// DeleteAll removes every stored videogame and returns the business keys of
// the deleted rows, so callers can propagate the change to anything holding
// stale reads.
func (s *VideogameStore) DeleteAll(ctx context.Context) ([]string, error) {
	var titles []string
	err := s.store.write(ctx, func(tx *gorm.DB) error {
		if err := tx.Model(&models.VideogameRecord{}).Pluck("title", &titles).Error; err != nil {
			return err
		}
		if len(titles) == 0 {
			return nil
		}
		return tx.Delete(&models.VideogameRecord{}, "title IN ?", titles).Error
	})
	if err != nil {
		return nil, StorageError(err)
	}
	if len(titles) > 0 {
		s.store.logger.Info("Deleted all videogames", zap.Int("count", len(titles)))
	}
	return titles, nil
}

// FetchFavorites returns the videogames flagged as favorites.
func (s *VideogameStore) FetchFavorites(ctx context.Context) ([]VideogameEntity, error) {
	var recs []models.VideogameRecord
	err := s.store.read(ctx, func(tx *gorm.DB) error {
		return tx.Where("is_favorite = ?", true).Order("title").Find(&recs).Error
	})
	if err != nil {
		return nil, StorageError(err)
	}

	entities := make([]VideogameEntity, 0, len(recs))
	for _, rec := range recs {
		entities = append(entities, RecordToEntity(rec))
	}
	return entities, nil
}

// UpdateFavoriteStatus flips the local-only favorite flag through a targeted
// partial update and returns the refreshed entity.
func (s *VideogameStore) UpdateFavoriteStatus(ctx context.Context, id string, isFavorite bool) (VideogameEntity, error) {
	err := s.store.write(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&models.VideogameRecord{}).
			Where("title = ?", id).
			Update("is_favorite", isFavorite)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return VideogameEntity{}, NotFoundError(id)
	}
	if err != nil {
		return VideogameEntity{}, StorageError(err)
	}

	return s.GetByID(ctx, id)
}

// DeveloperStore is the local store adapter for developers.
type DeveloperStore struct {
	store *Store
}

// NewDeveloperStore creates a developer store over the shared session core.
func NewDeveloperStore(store *Store) *DeveloperStore {
	return &DeveloperStore{store: store}
}

// GetAll returns every stored developer.
func (s *DeveloperStore) GetAll(ctx context.Context) ([]DeveloperEntity, error) {
	var recs []models.DeveloperRecord
	err := s.store.read(ctx, func(tx *gorm.DB) error {
		return tx.Order("name").Find(&recs).Error
	})
	if err != nil {
		return nil, StorageError(err)
	}

	entities := make([]DeveloperEntity, 0, len(recs))
	for _, rec := range recs {
		entities = append(entities, DeveloperRecordToEntity(rec))
	}
	return entities, nil
}

// GetByName returns the developer stored under the given name.
func (s *DeveloperStore) GetByName(ctx context.Context, name string) (DeveloperEntity, error) {
	var rec models.DeveloperRecord
	err := s.store.read(ctx, func(tx *gorm.DB) error {
		return tx.First(&rec, "name = ?", name).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DeveloperEntity{}, NotFoundError(name)
	}
	if err != nil {
		return DeveloperEntity{}, StorageError(err)
	}
	return DeveloperRecordToEntity(rec), nil
}

// UpsertAll persists a batch of developers keyed by name.
func (s *DeveloperStore) UpsertAll(ctx context.Context, entities []DeveloperEntity) error {
	err := s.store.write(ctx, func(tx *gorm.DB) error {
		for _, entity := range entities {
			rec := DeveloperEntityToRecord(entity)
			if err := tx.Save(&rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return StorageError(err)
	}
	return nil
}

// DeleteByName removes the developer stored under the given name.
func (s *DeveloperStore) DeleteByName(ctx context.Context, name string) error {
	err := s.store.write(ctx, func(tx *gorm.DB) error {
		result := tx.Delete(&models.DeveloperRecord{}, "name = ?", name)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError(name)
	}
	if err != nil {
		return StorageError(err)
	}
	return nil
}

// DeleteAll removes every stored developer and returns the deleted names.
func (s *DeveloperStore) DeleteAll(ctx context.Context) ([]string, error) {
	var names []string
	err := s.store.write(ctx, func(tx *gorm.DB) error {
		if err := tx.Model(&models.DeveloperRecord{}).Pluck("name", &names).Error; err != nil {
			return err
		}
		if len(names) == 0 {
			return nil
		}
		return tx.Delete(&models.DeveloperRecord{}, "name IN ?", names).Error
	})
	if err != nil {
		return nil, StorageError(err)
	}
	return names, nil
}
