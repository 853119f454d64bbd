package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and bind address configuration.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogDir  string `toml:"log_dir"`
	APIBind string `toml:"api_bind"`
}

// Catalog contains configuration for the movie catalog database.
type Catalog struct {
	DatabaseFile string `toml:"database_file"`
}

// TMDB contains configuration for The Movie Database API used during ingest.
type TMDB struct {
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
	Language string `toml:"language"`
}

// Scraper contains configuration for the IMDb list scraper.
type Scraper struct {
	BaseURL        string `toml:"base_url"`
	UserAgent      string `toml:"user_agent"`
	MaxPages       int    `toml:"max_pages"`
	RequestTimeout int    `toml:"request_timeout"`
	MinDelayMillis int    `toml:"min_delay_millis"`
	MaxDelayMillis int    `toml:"max_delay_millis"`
}

// Advisor contains tuning for title resolution and recommendation ranking.
type Advisor struct {
	// FuzzyThreshold is the similarity ratio a catalog title must exceed to
	// qualify as a fuzzy resolution candidate. Default: 0.6
	FuzzyThreshold float64 `toml:"fuzzy_threshold"`
	DefaultLimit   int     `toml:"default_limit"`
}

// Interests contains tuning for user-interest aggregation.
type Interests struct {
	TopGenres   int     `toml:"top_genres"`
	TopKeywords int     `toml:"top_keywords"`
	RateWeight  float64 `toml:"rate_weight"`
	LikeWeight  float64 `toml:"like_weight"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for CineMatch.
//
// Configuration sections by subsystem:
//   - Paths: data/log directories and the API bind address
//   - Catalog: movie database location
//   - TMDB: metadata and keyword enrichment during ingest
//   - Scraper: IMDb list scraping pacing and limits
//   - Advisor: fuzzy threshold and default recommendation count
//   - Interests: user-interest aggregation weights
//   - Logging: log format and level
type Config struct {
	Paths     Paths     `toml:"paths"`
	Catalog   Catalog   `toml:"catalog"`
	TMDB      TMDB      `toml:"tmdb"`
	Scraper   Scraper   `toml:"scraper"`
	Advisor   Advisor   `toml:"advisor"`
	Interests Interests `toml:"interests"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/cinematch/config.toml")
}

// SampleConfig returns the embedded annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// Load locates, parses, and validates a configuration file. The returned config
// has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath("~/.config/cinematch/config.toml")
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("cinematch.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the data and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// DatabasePath returns the absolute path to the catalog database file.
func (c *Config) DatabasePath() string {
	if filepath.IsAbs(c.Catalog.DatabaseFile) {
		return c.Catalog.DatabaseFile
	}
	return filepath.Join(c.Paths.DataDir, c.Catalog.DatabaseFile)
}

// IngestLockPath returns the path of the file lock taken during catalog ingest.
func (c *Config) IngestLockPath() string {
	return filepath.Join(c.Paths.DataDir, "ingest.lock")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
