package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aliskhannn/wordly/internal/domain/entities"
	"github.com/aliskhannn/wordly/pkg/validator"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverBolt     = "bolt"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env       string    `mapstructure:"env" validate:"oneof=local development production"` // current application environment
	WordsPath string    `mapstructure:"words_path"`                                         // word list file, bundled dataset when empty
	Timezone  string    `mapstructure:"timezone" validate:"required"`                       // calendar day timezone
	DailyGoal int       `mapstructure:"daily_goal" validate:"min=1,max=1000"`               // goal used until the learner sets one
	LogLevel  string    `mapstructure:"log_level" validate:"oneof=debug info warn error"`   // minimum log level
	Storage   Storage   `mapstructure:"storage"`                                            // persistence configuration section
	Scheduler Scheduler `mapstructure:"scheduler"`                                          // background jobs configuration section
}

// Storage contains persistence-related configuration parameters.
type Storage struct {
	Driver          string        `mapstructure:"driver" validate:"oneof=memory bolt sqlite postgres"` // backend kind
	DataDir         string        `mapstructure:"data_dir"`                                            // directory for file backed stores
	Path            string        `mapstructure:"path"`                                                // explicit store file, overrides DataDir
	URL             string        `mapstructure:"-"`                                                   // postgres connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections" validate:"min=1"`                    // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime" validate:"min=0"`                  // maximum lifetime of a single connection
}

// Scheduler contains background job parameters.
type Scheduler struct {
	ReminderCron string `mapstructure:"reminder_cron" validate:"required"` // standard cron spec for daily reminders
}

// DSN returns the database connection string if it is configured.
func (s Storage) DSN() (string, error) {
	if s.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return s.URL, nil
}

// FilePath returns the store file for the bolt and sqlite drivers.
func (s Storage) FilePath() string {
	if s.Path != "" {
		return s.Path
	}

	name := "wordly.db"
	if s.Driver == DriverSQLite {
		name = "wordly.sqlite"
	}
	return filepath.Join(s.DataDir, name)
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return entities.ParseTimezoneLocation(c.Timezone)
}

// Load reads configuration from a .env file, config files and environment
// variables. An empty file means ./config/config.yaml when present.
func Load(file string) (*Config, error) {
	// Values from .env never override the real environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
	}

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("words_path", "")
	v.SetDefault("timezone", "Local")
	v.SetDefault("daily_goal", 10)
	v.SetDefault("log_level", "info")
	v.SetDefault("storage.driver", DriverBolt)
	v.SetDefault("storage.data_dir", defaultDataDir())
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.max_connections", 5)
	v.SetDefault("storage.max_conn_lifetime", "30m")
	v.SetDefault("scheduler.reminder_cron", "0 20 * * *")

	// Configure environment variable handling and key mapping.
	v.SetEnvPrefix("wordly")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // storage.driver -> WORDLY_STORAGE_DRIVER
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("storage.data_dir", "WORDLY_DATA_DIR")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	// Load sensitive values from environment variables.
	cfg.Storage.URL = v.GetString("database_url")
	if cfg.Storage.Driver == DriverPostgres && cfg.Storage.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	return &cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wordly"
	}
	return filepath.Join(home, ".wordly")
}
