// Package config defines the application configuration model and its loader.
// Configuration is layered: built-in defaults, then an optional YAML file,
// then environment variables with the GLYCOSHAPE_ prefix, highest last.
package config

import (
	"fmt"
	"time"

	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
)

// Config is the root configuration for the GlycoShape API service.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Conversion ConversionConfig `mapstructure:"conversion"`
	Search     SearchConfig     `mapstructure:"search"`
	Logging    logging.Config   `mapstructure:"logging"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// AccessPin guards the raw-data download endpoint. Empty disables it.
	AccessPin string `mapstructure:"access_pin"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig locates the on-disk glycan database.
type DatabaseConfig struct {
	// Dir is the root of the glycan database tree. Each glycan occupies a
	// folder named by its archetype GlyTouCan accession.
	Dir string `mapstructure:"dir"`
	// CatalogFile is the consolidated catalog JSON, relative to Dir when
	// not absolute.
	CatalogFile string `mapstructure:"catalog_file"`
	// UploadDir receives files submitted through the contribution endpoint.
	UploadDir string `mapstructure:"upload_dir"`
	// RawDataDir holds simulation raw data served behind the access pin.
	RawDataDir string `mapstructure:"raw_data_dir"`
	// InventoryCSV records contribution submissions.
	InventoryCSV string `mapstructure:"inventory_csv"`
}

// RedisConfig controls the optional conversion cache. Enabled=false runs the
// service without Redis; conversions then always hit the upstream service.
type RedisConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	PoolSize     int           `mapstructure:"pool_size"`
	// TTL bounds how long converted notations stay cached.
	TTL time.Duration `mapstructure:"ttl"`
}

// StorageConfig selects the backing store for glycan artifact files.
type StorageConfig struct {
	// Backend is "disk" or "minio".
	Backend string      `mapstructure:"backend"`
	Minio   MinioConfig `mapstructure:"minio"`
}

// MinioConfig configures the S3-compatible object store backend.
type MinioConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
}

// ConversionConfig configures external notation converters.
type ConversionConfig struct {
	// GlyCosmosBaseURL is the glycanformatconverter service root.
	GlyCosmosBaseURL string        `mapstructure:"glycosmos_base_url"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout"`
	// MolWURCSJar is the path to the MolWURCS jar for SMILES conversion.
	// Empty disables SMILES input support.
	MolWURCSJar string `mapstructure:"molwurcs_jar"`
	// JavaBin is the java executable used to run MolWURCS.
	JavaBin string `mapstructure:"java_bin"`
}

// SearchConfig tunes the similarity search engine.
type SearchConfig struct {
	// StructuralLimit caps the number of WURCS similarity results.
	StructuralLimit int `mapstructure:"structural_limit"`
	// TextLimit caps the number of free-text search results.
	TextLimit int `mapstructure:"text_limit"`
	// TextThreshold is the minimum score for a free-text hit to count.
	TextThreshold float64 `mapstructure:"text_threshold"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Validate checks the configuration for values the service cannot start
// with. It reports the first problem found.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d out of range", c.Server.Port)
	}
	if c.Database.Dir == "" {
		return fmt.Errorf("config: database.dir is required")
	}
	if c.Database.CatalogFile == "" {
		return fmt.Errorf("config: database.catalog_file is required")
	}
	switch c.Storage.Backend {
	case "disk":
	case "minio":
		if c.Storage.Minio.Endpoint == "" {
			return fmt.Errorf("config: storage.minio.endpoint is required for minio backend")
		}
		if c.Storage.Minio.Bucket == "" {
			return fmt.Errorf("config: storage.minio.bucket is required for minio backend")
		}
	default:
		return fmt.Errorf("config: unknown storage.backend %q", c.Storage.Backend)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required when redis.enabled")
	}
	if c.Search.StructuralLimit <= 0 {
		return fmt.Errorf("config: search.structural_limit must be positive")
	}
	if c.Search.TextLimit <= 0 {
		return fmt.Errorf("config: search.text_limit must be positive")
	}
	return nil
}
