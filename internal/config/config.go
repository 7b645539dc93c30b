package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Engine holds all configuration for the status simulation.
type Engine struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Tick loop
	TickInterval time.Duration `yaml:"tick_interval"`
	Workers      int           `yaml:"workers"` // 0 = GOMAXPROCS
	Ticks        int           `yaml:"ticks"`   // 0 = run until interrupted

	// Durations of main statuses applied by kind.
	StunDuration   time.Duration `yaml:"stun_duration"`
	PoisonDuration time.Duration `yaml:"poison_duration"`

	// Secondary status templates. Read from YAML unless UseDatabase is set.
	TemplatesPath string `yaml:"templates_path"`
	UseDatabase   bool   `yaml:"use_database"`

	// Demo population spawned by cmd/statussim.
	Characters int `yaml:"characters"`

	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultEngine returns Engine config with sensible defaults.
func DefaultEngine() Engine {
	return Engine{
		LogLevel:       "info",
		TickInterval:   100 * time.Millisecond,
		Workers:        0,
		Ticks:          0,
		StunDuration:   2 * time.Second,
		PoisonDuration: 5 * time.Second,
		TemplatesPath:  "config/statuses.yaml",
		UseDatabase:    false,
		Characters:     64,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "statusfx",
			Password: "statusfx",
			DBName:   "statusfx",
			SSLMode:  "disable",
		},
	}
}

// LoadEngine loads engine config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadEngine(path string) (Engine, error) {
	cfg := DefaultEngine()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values the engine cannot run with.
func (e Engine) Validate() error {
	if e.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %s", e.TickInterval)
	}
	if e.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", e.Workers)
	}
	if e.Ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", e.Ticks)
	}
	if e.StunDuration <= 0 || e.PoisonDuration <= 0 {
		return fmt.Errorf("stun_duration and poison_duration must be positive")
	}
	if e.Characters < 0 {
		return fmt.Errorf("characters must not be negative, got %d", e.Characters)
	}
	return nil
}
