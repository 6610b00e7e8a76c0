package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chalkline-games/repquest/internal/database"
)

// GameConfig holds game-wide configuration settings.
type GameConfig struct {
	Data     DataConfig     `yaml:"data"`
	Database DatabaseConfig `yaml:"database"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Feed     FeedConfig     `yaml:"feed"`
	PIN      PinConfig      `yaml:"pin"`
}

// DataConfig holds paths for game data files.
type DataConfig struct {
	// Dir is the directory containing YAML definition files
	// (equipment, quests, shop items, trainers).
	Dir string `yaml:"dir"`
}

// DatabaseConfig holds profile and save storage settings.
type DatabaseConfig struct {
	// Driver selects the storage backend: "sqlite" or "postgres".
	Driver string `yaml:"driver"`

	// Path is the SQLite database file. Empty means
	// <data dir>/repquest.db.
	Path string `yaml:"path"`

	// Postgres holds connection settings used when Driver is "postgres".
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`

	// Connection pool settings
	MaxOpenConns           int `yaml:"max_open_conns"`
	MaxIdleConns           int `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int `yaml:"conn_max_lifetime_minutes"`
}

// GameplayConfig holds tunable gameplay settings.
type GameplayConfig struct {
	// AutosaveSeconds is the interval between automatic saves.
	// 0 disables autosave.
	AutosaveSeconds int `yaml:"autosave_seconds"`

	// StartingCurrency is the money a new character begins with.
	StartingCurrency int `yaml:"starting_currency"`
}

// FeedConfig holds settings for the activity feed WebSocket server.
type FeedConfig struct {
	// Enabled turns the feed server on or off.
	Enabled bool `yaml:"enabled"`

	// Addr is the listen address for the feed server.
	Addr string `yaml:"addr"`

	// AllowedOrigins is a list of origins allowed to connect.
	// Empty list enforces same-origin policy.
	// Use "*" to allow all origins (not recommended for production).
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxPerIP is the maximum concurrent connections allowed from a
	// single IP address. 0 means unlimited.
	MaxPerIP int `yaml:"max_per_ip"`

	// MaxTotal is the maximum total concurrent feed connections.
	// 0 means unlimited.
	MaxTotal int `yaml:"max_total"`
}

// PinConfig holds profile PIN validation settings.
type PinConfig struct {
	// MinLength is the minimum PIN length (default: 4)
	MinLength int `yaml:"min_length"`

	// MaxLength is the maximum PIN length (default: 8)
	MaxLength int `yaml:"max_length"`
}

// DefaultConfig returns a GameConfig with sensible defaults.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Data: DataConfig{
			Dir: "data",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			Postgres: PostgresConfig{
				Host:                   "localhost",
				Port:                   5432,
				SSLMode:                "disable",
				MaxOpenConns:           25,
				MaxIdleConns:           5,
				ConnMaxLifetimeMinutes: 5,
			},
		},
		Gameplay: GameplayConfig{
			AutosaveSeconds:  60,
			StartingCurrency: 100,
		},
		Feed: FeedConfig{
			Enabled:        false, // Opt-in; most sessions are single-player
			Addr:           "localhost:8089",
			AllowedOrigins: []string{},
			MaxPerIP:       3,
			MaxTotal:       50,
		},
		PIN: PinConfig{
			MinLength: 4,
			MaxLength: 8,
		},
	}
}

// LoadConfig loads game configuration from a YAML file.
// If the file doesn't exist, returns default config.
func LoadConfig(path string) (*GameConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(config)
			return config, nil // Use defaults if file doesn't exist
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides applies REPQUEST_* environment variables on top of
// whatever the file provided.
func applyEnvOverrides(config *GameConfig) {
	if dir := os.Getenv("REPQUEST_DATA_DIR"); dir != "" {
		config.Data.Dir = dir
	}
	if addr := os.Getenv("REPQUEST_FEED_ADDR"); addr != "" {
		config.Feed.Addr = addr
	}
	if enabled := os.Getenv("REPQUEST_FEED_ENABLED"); enabled != "" {
		config.Feed.Enabled = enabled == "true" || enabled == "1"
	}
	if secs := os.Getenv("REPQUEST_AUTOSAVE_SECONDS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil && n >= 0 {
			config.Gameplay.AutosaveSeconds = n
		}
	}
	if driver := os.Getenv("REPQUEST_DB_DRIVER"); driver != "" {
		config.Database.Driver = driver
	}
	if path := os.Getenv("REPQUEST_DB_PATH"); path != "" {
		config.Database.Path = path
	}
	if host := os.Getenv("REPQUEST_DB_HOST"); host != "" {
		config.Database.Postgres.Host = host
	}
	if port := os.Getenv("REPQUEST_DB_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			config.Database.Postgres.Port = n
		}
	}
	if user := os.Getenv("REPQUEST_DB_USER"); user != "" {
		config.Database.Postgres.User = user
	}
	if pass := os.Getenv("REPQUEST_DB_PASSWORD"); pass != "" {
		config.Database.Postgres.Password = pass
	}
	if name := os.Getenv("REPQUEST_DB_NAME"); name != "" {
		config.Database.Postgres.DBName = name
	}
	if mode := os.Getenv("REPQUEST_DB_SSLMODE"); mode != "" {
		config.Database.Postgres.SSLMode = mode
	}
}

// StoreConfig converts the database section into the form the storage
// layer consumes. An empty SQLite path defaults to repquest.db inside
// the data directory.
func (c *GameConfig) StoreConfig() database.Config {
	path := c.Database.Path
	if path == "" {
		path = filepath.Join(c.Data.Dir, "repquest.db")
	}

	store := database.DefaultConfig(path)
	store.Driver = c.Database.Driver

	if c.Database.Driver == "postgres" {
		pg := database.DefaultPostgresConfig()
		pg.Host = c.Database.Postgres.Host
		pg.Port = c.Database.Postgres.Port
		pg.User = c.Database.Postgres.User
		pg.Password = c.Database.Postgres.Password
		pg.Database = c.Database.Postgres.DBName
		pg.SSLMode = c.Database.Postgres.SSLMode
		if c.Database.Postgres.MaxOpenConns > 0 {
			pg.MaxOpenConns = c.Database.Postgres.MaxOpenConns
		}
		if c.Database.Postgres.MaxIdleConns > 0 {
			pg.MaxIdleConns = c.Database.Postgres.MaxIdleConns
		}
		if c.Database.Postgres.ConnMaxLifetimeMinutes > 0 {
			pg.ConnMaxLifetime = time.Duration(c.Database.Postgres.ConnMaxLifetimeMinutes) * time.Minute
		}
		store.Postgres = pg
	}

	return store
}

// IsOriginAllowed checks if the given origin is allowed based on the config.
// Returns true if:
// - AllowedOrigins contains "*" (allow all)
// - AllowedOrigins contains the exact origin
// - AllowedOrigins is empty and origin matches the request host (same-origin)
func (c *FeedConfig) IsOriginAllowed(origin, requestHost string) bool {
	// If no origins configured, enforce same-origin policy
	if len(c.AllowedOrigins) == 0 {
		return isSameOrigin(origin, requestHost)
	}

	for _, allowed := range c.AllowedOrigins {
		// Wildcard allows all origins
		if allowed == "*" {
			return true
		}
		// Exact match
		if allowed == origin {
			return true
		}
	}

	return false
}

// isSameOrigin checks if the origin matches the request host (same-origin policy).
func isSameOrigin(origin, requestHost string) bool {
	if origin == "" {
		return true // No origin header means same-origin (e.g., non-browser client)
	}

	// Extract host from origin URL (e.g., "http://localhost:3000" -> "localhost:3000")
	originHost := origin
	if idx := strings.Index(origin, "://"); idx != -1 {
		originHost = origin[idx+3:]
	}
	// Remove trailing slash if present
	originHost = strings.TrimSuffix(originHost, "/")

	return originHost == requestHost
}

// ValidatePIN checks if a PIN meets the configured requirements.
// Returns an error message describing what's wrong, or empty string if valid.
func (c *PinConfig) ValidatePIN(pin string) string {
	minLen := c.MinLength
	if minLen == 0 {
		minLen = 4 // Default if not set
	}
	maxLen := c.MaxLength
	if maxLen == 0 {
		maxLen = 8
	}

	if len(pin) < minLen {
		return "PIN must be at least " + strconv.Itoa(minLen) + " digits."
	}
	if len(pin) > maxLen {
		return "PIN must be at most " + strconv.Itoa(maxLen) + " digits."
	}

	for _, r := range pin {
		if r < '0' || r > '9' {
			return "PIN must contain only digits."
		}
	}

	return ""
}

// GetRequirementsText returns a human-readable description of PIN requirements.
func (c *PinConfig) GetRequirementsText() string {
	minLen := c.MinLength
	if minLen == 0 {
		minLen = 4
	}
	maxLen := c.MaxLength
	if maxLen == 0 {
		maxLen = 8
	}

	return strconv.Itoa(minLen) + "-" + strconv.Itoa(maxLen) + " digits"
}
