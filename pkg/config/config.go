package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig          `mapstructure:"server"`
	Web      WebConfig             `mapstructure:"web"`
	Cells    map[string]CellConfig `mapstructure:"cells"`
	Database DatabaseConfig        `mapstructure:"database"`
	Logging  LoggingConfig         `mapstructure:"logging"`
	Metrics  MetricsConfig         `mapstructure:"metrics"`
}

// ServerConfig holds server identification
type ServerConfig struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

// WebConfig holds web dashboard configuration
type WebConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
}

// CellConfig describes a single NR carrier to be resolved at startup.
// Frequencies are in kHz, bandwidths in MHz, subcarrier spacings in kHz.
type CellConfig struct {
	Band            int    `mapstructure:"band"`
	Bw              int    `mapstructure:"bw"`
	BwUL            int    `mapstructure:"bw_ul"`
	ScsCarrier      int    `mapstructure:"scs_carrier"`
	ScsCommon       int    `mapstructure:"scs_common"`
	ScsSSB          int    `mapstructure:"scs_ssb"`
	FcChannel       int    `mapstructure:"fc_channel"`
	FcChannelUL     int    `mapstructure:"fc_channel_ul"`
	PdcchConfigSib1 int    `mapstructure:"pdcch_config_sib1"`
	OffsetToCarrier int    `mapstructure:"offset_to_carrier"`
	FFcToPointA     int    `mapstructure:"f_fc_to_point_a"`
	UseSyncRaster   *bool  `mapstructure:"use_sync_raster"`
	SSBTransmission string `mapstructure:"ssb_transmission"`

	// SSB burst layout
	SSBInOneGroup    string `mapstructure:"ssb_in_onegroup"`
	SSBGroupPresence string `mapstructure:"ssb_group_presence"`
	SSBPeriodicity   int    `mapstructure:"ssb_periodicity"` // Milliseconds
}

// DatabaseConfig holds cell plan database configuration
type DatabaseConfig struct {
	Path          string `mapstructure:"path"`
	RetentionDays int    `mapstructure:"retention_days"` // 0 keeps plans forever
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Enabled    bool             `mapstructure:"enabled"`
	Prometheus PrometheusConfig `mapstructure:"prometheus"`
}

// PrometheusConfig holds Prometheus metrics configuration
type PrometheusConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port"`
	Path    string `mapstructure:"path"`
}

// Load loads configuration from file and environment variables
func Load(configFile string) (*Config, error) {
	// Set defaults
	setDefaults()

	// Set config file
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath("/etc/nr-frequency")
	}

	// Environment variables
	viper.SetEnvPrefix("NRF")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found is OK, use defaults
		} else if os.IsNotExist(err) {
			// File explicitly specified but doesn't exist - that's also OK
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal to struct
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.name", "nr-frequency")
	viper.SetDefault("server.description", "NR frequency planning service")

	// Web defaults
	viper.SetDefault("web.enabled", true)
	viper.SetDefault("web.host", "0.0.0.0")
	viper.SetDefault("web.port", 8080)

	// Database defaults
	viper.SetDefault("database.path", "nr-frequency.db")
	viper.SetDefault("database.retention_days", 0)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.max_size", 100)
	viper.SetDefault("logging.max_backups", 3)
	viper.SetDefault("logging.max_age", 7)

	// Metrics defaults
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.prometheus.enabled", true)
	viper.SetDefault("metrics.prometheus.port", 9090)
	viper.SetDefault("metrics.prometheus.path", "/metrics")
}
