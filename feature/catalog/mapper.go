package catalog

import (
	"time"

	"game-catalog/core/utils"
	"game-catalog/feature/catalog/models"
)

// Release dates arrive as full ISO-8601 datetimes ("2009-05-17T00:00:00Z");
// some older feed entries carry a bare year.
const releaseDateYearOnly = "2006"

// WireToEntity maps an untyped wire record to a VideogameEntity.
//
// The mapping is total-but-nullable: if any required field is missing or has
// the wrong shape, the whole record is dropped (ok is false) rather than
// producing a partial entity. Callers filter dropped records and count them
// without aborting the batch.
//
// A freshly mapped entity always has IsFavorite set to false; the wire
// format carries no such field.
func WireToEntity(raw RawRecord) (VideogameEntity, bool) {
	title, okTitle := stringField(raw, "title")
	description, okDescription := stringField(raw, "description")
	releaseDate, okReleaseDate := stringField(raw, "releaseYear")
	logo, okLogo := stringField(raw, "logo")

	devRaw := utils.ToStringMap(raw["developer"])
	platformsRaw, hasPlatforms := raw["platforms"]
	screenshotsRaw, hasScreenshots := raw["screenshotIdentifiers"]

	if !okTitle || !okDescription || !okReleaseDate || !okLogo ||
		devRaw == nil || !hasPlatforms || !hasScreenshots {
		return VideogameEntity{}, false
	}

	developer, ok := wireToDeveloper(devRaw)
	if !ok {
		return VideogameEntity{}, false
	}

	platformStrings := utils.ToStringSlice(platformsRaw)
	screenshots := utils.ToStringSlice(screenshotsRaw)
	if platformStrings == nil || screenshots == nil {
		return VideogameEntity{}, false
	}

	platforms := make([]Platform, 0, len(platformStrings))
	for _, p := range platformStrings {
		// Unknown platform strings become the sentinel, never an error.
		platforms = append(platforms, ParsePlatform(p))
	}

	return VideogameEntity{
		ID:                    title,
		Title:                 title,
		DescriptionText:       description,
		ReleaseDateRaw:        releaseDate,
		Developer:             developer,
		Platforms:             platforms,
		LogoAssetName:         logo,
		ScreenshotIdentifiers: screenshots,
		IsFavorite:            false,
	}, true
}

// stringField reads a required string field from a wire record. Absent,
// non-string, and empty values all report false; the tolerant converters
// must not be used here because they stringify absence instead of
// signalling it.
func stringField(raw map[string]any, key string) (string, bool) {
	s, ok := raw[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// wireToDeveloper maps the nested developer object of a wire record.
// Name and logo are required; website is optional.
func wireToDeveloper(raw map[string]any) (DeveloperEntity, bool) {
	name, okName := stringField(raw, "name")
	logo, okLogo := stringField(raw, "logo")
	if !okName || !okLogo {
		return DeveloperEntity{}, false
	}

	var website *string
	if w, ok := stringField(raw, "website"); ok {
		website = &w
	}

	return DeveloperEntity{
		ID:            name,
		Name:          name,
		LogoAssetName: logo,
		Website:       website,
	}, true
}

// RecordToEntity maps a stored videogame record to its domain entity.
func RecordToEntity(rec models.VideogameRecord) VideogameEntity {
	platforms := make([]Platform, 0, len(rec.Platforms))
	for _, p := range rec.Platforms {
		platforms = append(platforms, ParsePlatform(p))
	}

	return VideogameEntity{
		ID:              rec.Title,
		Title:           rec.Title,
		DescriptionText: rec.Description,
		ReleaseDateRaw:  rec.ReleaseDateRaw,
		Developer: DeveloperEntity{
			ID:            rec.DeveloperName,
			Name:          rec.DeveloperName,
			LogoAssetName: rec.DeveloperLogo,
			Website:       rec.DeveloperWebsite,
		},
		Platforms:             platforms,
		LogoAssetName:         rec.Logo,
		ScreenshotIdentifiers: rec.Screenshots,
		IsFavorite:            rec.IsFavorite,
	}
}

// DeveloperRecordToEntity maps a stored developer record to its entity.
func DeveloperRecordToEntity(rec models.DeveloperRecord) DeveloperEntity {
	return DeveloperEntity{
		ID:            rec.Name,
		Name:          rec.Name,
		LogoAssetName: rec.Logo,
		Website:       rec.Website,
	}
}

// EntityToRecord builds the stored record for a videogame entity.
//
// When existing is non-nil the stored record is updated in place: store-only
// fields, currently the favorite flag, are preserved from the existing record
// instead of being taken from the incoming entity. When existing is nil a new
// record is created and the entity's own favorite flag is kept.
//
// dateOK reports whether the release date string parsed; a false value with
// a non-empty raw date is a warning condition, never an error.
func EntityToRecord(entity VideogameEntity, existing *models.VideogameRecord) (models.VideogameRecord, bool) {
	// Starting from *existing keeps store-only fields, the favorite flag
	// among them, that the incoming entity does not carry authority over.
	rec := models.VideogameRecord{IsFavorite: entity.IsFavorite}
	if existing != nil {
		rec = *existing
	}

	rec.Title = entity.Title
	rec.Description = entity.DescriptionText
	rec.ReleaseDateRaw = entity.ReleaseDateRaw
	rec.DeveloperName = entity.Developer.Name
	rec.DeveloperLogo = entity.Developer.LogoAssetName
	rec.DeveloperWebsite = entity.Developer.Website
	rec.Logo = entity.LogoAssetName
	rec.Screenshots = entity.ScreenshotIdentifiers

	rec.Platforms = make([]string, 0, len(entity.Platforms))
	for _, p := range entity.Platforms {
		rec.Platforms = append(rec.Platforms, string(p))
	}

	date, dateOK := parseReleaseDate(entity.ReleaseDateRaw)
	rec.ReleaseDate = date

	return rec, dateOK
}

// DeveloperEntityToRecord builds the stored record for a developer entity.
func DeveloperEntityToRecord(entity DeveloperEntity) models.DeveloperRecord {
	return models.DeveloperRecord{
		Name:    entity.Name,
		Logo:    entity.LogoAssetName,
		Website: entity.Website,
	}
}

// parseReleaseDate attempts the full ISO-8601 format first and falls back to
// a bare year. If both fail the stored date is cleared (nil, false).
func parseReleaseDate(raw string) (*time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	if t, err := time.Parse(releaseDateYearOnly, raw); err == nil {
		return &t, true
	}
	return nil, false
}
