package cache

// Config holds configuration for the Redis connection.
type Config struct {
	// Enabled turns the Redis mirror on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Addr is the host:port of the Redis server.
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password authenticates the connection.
	Password string `mapstructure:"password" default:""`
	// DB selects the logical database.
	DB int `mapstructure:"db" default:"0"`
	// KeyPrefix namespaces every key written by this process.
	KeyPrefix string `mapstructure:"key_prefix" default:"asset-registry:"`
	// TTLSeconds expires mirrored values. Zero keeps them forever.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"0"`
}
