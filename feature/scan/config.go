package scan

import "time"

// Config controls the background reconciliation.
type Config struct {
	// Enabled turns the recurring scan on. On-demand scans always work.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Directories are searched non-recursively, in order.
	Directories []string `mapstructure:"directories" default:".,data"`
	Pattern     string   `mapstructure:"pattern" default:"*.xlsx"`
	// LockPrefix marks editor lock files (Excel writes "~$name.xlsx").
	LockPrefix string `mapstructure:"lock_prefix" default:"~$"`
	// HeaderRow is the number of title rows above the column header.
	HeaderRow int           `mapstructure:"header_row" default:"5"`
	Interval  time.Duration `mapstructure:"interval" default:"60m"`
	// RunOnStart triggers one scan as soon as the scheduler starts.
	RunOnStart bool `mapstructure:"run_on_start" default:"true"`
	// MirrorKey is the cache key holding the latest result when Redis is enabled.
	MirrorKey string `mapstructure:"mirror_key" default:"scan:latest"`
}
