package archive

import "time"

// Backend names accepted by Config.Backend.
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// Config holds configuration for artifact persistence.
type Config struct {
	// Backend selects where artifacts go (local, s3).
	Backend string `mapstructure:"backend" default:"local"`
	// UploadDir is the root for uploaded source files (a directory or a bucket prefix).
	UploadDir string `mapstructure:"upload_dir" default:"uploaded_files"`
	// RecordDir is the root for per-run artifacts.
	RecordDir string `mapstructure:"record_dir" default:"records"`
	// RetentionDays is the age after which artifacts are swept.
	RetentionDays int `mapstructure:"retention_days" default:"7"`
	// SweepIntervalMinutes schedules background sweeps; 0 disables the schedule.
	SweepIntervalMinutes int `mapstructure:"sweep_interval_minutes" default:"0"`
}

// Retention returns the retention age, falling back to 7 days.
func (c Config) Retention() time.Duration {
	days := c.RetentionDays
	if days <= 0 {
		days = 7
	}
	return time.Duration(days) * 24 * time.Hour
}

// SweepInterval returns the background sweep period, or 0 when disabled.
func (c Config) SweepInterval() time.Duration {
	if c.SweepIntervalMinutes <= 0 {
		return 0
	}
	return time.Duration(c.SweepIntervalMinutes) * time.Minute
}
