package backup

// Config controls database backups.
type Config struct {
	// Enabled schedules the daily backup.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Schedule is a standard five-field cron expression.
	Schedule string `mapstructure:"schedule" default:"0 1 * * *"`
	// Dir receives the local backup files.
	Dir string `mapstructure:"dir" default:"backups"`
	// RetentionDays is how long local and uploaded backups are kept.
	RetentionDays int `mapstructure:"retention_days" default:"7"`
	// Upload copies every backup to object storage when storage is enabled.
	Upload bool   `mapstructure:"upload" default:"true"`
	Prefix string `mapstructure:"prefix" default:"backups/"`
}
