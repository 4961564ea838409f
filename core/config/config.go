package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"stock-sync/core/archive"
	"stock-sync/core/database"
	"stock-sync/core/logger"
	"stock-sync/core/server"
	"stock-sync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the stock-sync configuration. Each section maps to an env
// prefix: SERVER_, LOG_, ARCHIVE_, STORAGE_ and DATABASE_.
type Config struct {
	// Server is the HTTP listener: port, API key and upload body limit.
	Server server.Config `mapstructure:"server"`
	// Archive selects where uploads and per-run records go (local or s3),
	// their roots and how long they are kept.
	Archive archive.Config `mapstructure:"archive"`
	// Storage is the MinIO/S3 connection. Only read when Archive.Backend is s3.
	Storage storage.Config `mapstructure:"storage"`
	// Log sets the zap level and encoding.
	Log logger.Config `mapstructure:"log"`
	// Database is the run ledger. An empty driver disables the ledger.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig reads dir/.env (if any) into the process environment, then
// resolves every key from the environment on top of the tag defaults.
// Values in .env win over variables already set.
func LoadConfig(dir string) (*Config, error) {
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	bindValues(v, Config{}, "")

	// archive.retention_days <- ARCHIVE_RETENTION_DAYS
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindValues registers every leaf key of iface under prefix with its
// `default` tag. Registration is what lets AutomaticEnv resolve the key, so
// fields without a default are registered with "".
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
