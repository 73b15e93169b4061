package catalog

// Config holds configuration for the catalog feature.
type Config struct {
	// FeedURL is the endpoint returning the remote JSON catalog.
	FeedURL string `mapstructure:"feed_url" default:"https://appexamplevideogames-default-rtdb.europe-west1.firebasedatabase.app/videogames.json"`
	// FeedTimeoutSeconds is the remote fetch timeout in seconds.
	FeedTimeoutSeconds int `mapstructure:"feed_timeout_seconds" default:"30"`
	// Strategy is the default fetch strategy
	// (local_only, remote_only, local_then_remote, remote_else_local).
	Strategy string `mapstructure:"strategy" default:"remote_else_local"`
}
