package assets

// Config holds the asset-integrity settings.
type Config struct {
	// Prefix is the object-key prefix under which catalog assets live.
	Prefix string `mapstructure:"prefix" default:""`

	// CacheTTLSeconds is how long a built comparison index stays valid.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}
