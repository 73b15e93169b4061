package catalog

import "strings"

// Platform represents a platform a videogame can be available on.
type Platform string

const (
	PlatformPC             Platform = "pc"
	PlatformSteam          Platform = "steam"
	PlatformXbox           Platform = "xbox"
	PlatformPlaystation    Platform = "playstation"
	PlatformIOS            Platform = "ios"
	PlatformAndroid        Platform = "android"
	PlatformNintendoSwitch Platform = "nintendoswitch"

	// PlatformMissing is the decode-failure sentinel. Unknown platform
	// strings map to it instead of failing the record; it persists and
	// round-trips like any other value.
	PlatformMissing Platform = "missing"
)

var knownPlatforms = map[Platform]struct{}{
	PlatformPC:             {},
	PlatformSteam:          {},
	PlatformXbox:           {},
	PlatformPlaystation:    {},
	PlatformIOS:            {},
	PlatformAndroid:        {},
	PlatformNintendoSwitch: {},
	PlatformMissing:        {},
}

// ParsePlatform maps a raw platform string to a Platform value.
// The string is lowercased and stripped of spaces before lookup;
// anything unmapped becomes PlatformMissing.
func ParsePlatform(raw string) Platform {
	normalized := Platform(strings.ReplaceAll(strings.ToLower(raw), " ", ""))
	if _, ok := knownPlatforms[normalized]; ok {
		return normalized
	}
	return PlatformMissing
}

// DeveloperEntity represents a game developer.
// The name is the natural business key; no surrogate key exists.
type DeveloperEntity struct {
	// ID is the unique identifier for the developer, which is its name.
	ID string `json:"id"`
	// Name is the developer's display name.
	Name string `json:"name"`
	// LogoAssetName is the asset identifier for the developer's logo.
	LogoAssetName string `json:"logo"`
	// Website is the developer's website, if known.
	Website *string `json:"website,omitempty"`
}

// VideogameEntity represents a videogame in the catalog.
// The title is the natural business key, unique across the catalog.
type VideogameEntity struct {
	// ID is the unique business key identifier, which is the title.
	ID string `json:"id"`
	// Title is the videogame's title.
	Title string `json:"title"`
	// DescriptionText is the videogame's description.
	DescriptionText string `json:"description"`
	// ReleaseDateRaw is the release date string as delivered by the feed
	// (ISO-8601). It is parsed lazily; see ReleaseYear.
	ReleaseDateRaw string `json:"release_date"`
	// Developer is a denormalized copy of the developer, not a reference.
	Developer DeveloperEntity `json:"developer"`
	// Platforms is the ordered list of platforms.
	Platforms []Platform `json:"platforms"`
	// LogoAssetName is the asset identifier for the game's logo.
	LogoAssetName string `json:"logo"`
	// ScreenshotIdentifiers is the ordered list of screenshot asset names.
	ScreenshotIdentifiers []string `json:"screenshot_identifiers"`
	// IsFavorite is a local-only flag, never sourced from the remote feed.
	IsFavorite bool `json:"is_favorite"`
}

// ReleaseYear returns the 4-digit year prefix of the raw release date,
// or an empty string when the raw value is too short to contain one.
func (v VideogameEntity) ReleaseYear() string {
	if len(v.ReleaseDateRaw) < 4 {
		return ""
	}
	return v.ReleaseDateRaw[:4]
}
