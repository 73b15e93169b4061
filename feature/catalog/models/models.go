package models

import (
	"time"

	"gorm.io/gorm"
)

// VideogameRecord is the persisted representation of a videogame.
// The title is the primary key; the developer fields are a denormalized
// copy, not a foreign key. List-valued fields persist as JSON columns.
type VideogameRecord struct {
	Title       string `gorm:"primaryKey;size:191"`
	Description string

	// ReleaseDateRaw keeps the feed's original ISO-8601 string so the
	// value round-trips even when parsing fails.
	ReleaseDateRaw string
	// ReleaseDate is the parsed date, nil when neither the full ISO-8601
	// form nor the year-only fallback could be parsed.
	ReleaseDate *time.Time

	DeveloperName    string `gorm:"index;size:191"`
	DeveloperLogo    string
	DeveloperWebsite *string

	Platforms   []string `gorm:"serializer:json"`
	Logo        string
	Screenshots []string `gorm:"serializer:json"`

	// IsFavorite is local-only state; the wire format has no such field
	// and upserts must preserve it.
	IsFavorite bool `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeveloperRecord is the persisted representation of a developer,
// keyed by name.
type DeveloperRecord struct {
	Name    string `gorm:"primaryKey;size:191"`
	Logo    string
	Website *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Migrate creates or updates the catalog tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&DeveloperRecord{}, &VideogameRecord{})
}
