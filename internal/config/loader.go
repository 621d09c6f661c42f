package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const envPrefix = "GLYCOSHAPE"

// Loader reads, validates and watches the service configuration.
type Loader struct {
	v *viper.Viper
}

// NewLoader constructs a Loader. configFile may be empty, in which case only
// defaults and environment variables apply.
func NewLoader(configFile string) *Loader {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// Load reads the configuration and validates it.
func (l *Loader) Load() (*Config, error) {
	if l.v.ConfigFileUsed() != "" {
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", l.v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Watch re-loads the configuration whenever the file changes and passes the
// result to onChange. Reloads that fail validation are dropped. No-op when
// no config file is in use.
func (l *Loader) Watch(onChange func(*Config)) {
	if l.v.ConfigFileUsed() == "" {
		return
	}
	l.v.OnConfigChange(func(_ fsnotify.Event) {
		var cfg Config
		if err := l.v.Unmarshal(&cfg); err != nil {
			return
		}
		if err := cfg.Validate(); err != nil {
			return
		}
		onChange(&cfg)
	})
	l.v.WatchConfig()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.access_pin", "")

	v.SetDefault("database.dir", "/mnt/database/glycoshape_data")
	v.SetDefault("database.catalog_file", "GLYCOSHAPE.json")
	v.SetDefault("database.upload_dir", "/mnt/database/upload")
	v.SetDefault("database.raw_data_dir", "/mnt/database/raw_data")
	v.SetDefault("database.inventory_csv", "/mnt/database/inventory.csv")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.dial_timeout", 5*time.Second)
	v.SetDefault("redis.read_timeout", 3*time.Second)
	v.SetDefault("redis.write_timeout", 3*time.Second)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.ttl", 24*time.Hour)

	v.SetDefault("storage.backend", "disk")
	v.SetDefault("storage.minio.use_ssl", true)
	v.SetDefault("storage.minio.bucket", "glycoshape")

	v.SetDefault("conversion.glycosmos_base_url", "https://api.glycosmos.org/glycanformatconverter/2.10.0")
	v.SetDefault("conversion.request_timeout", 20*time.Second)
	v.SetDefault("conversion.java_bin", "java")

	v.SetDefault("search.structural_limit", 10)
	v.SetDefault("search.text_limit", 20)
	v.SetDefault("search.text_threshold", 50)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
