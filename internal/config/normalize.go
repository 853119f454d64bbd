package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCatalog()
	c.normalizeTMDB()
	c.normalizeScraper()
	c.normalizeAdvisor()
	c.normalizeInterests()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	if c.Paths.APIBind == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	return nil
}

func (c *Config) normalizeCatalog() {
	c.Catalog.DatabaseFile = strings.TrimSpace(c.Catalog.DatabaseFile)
	if c.Catalog.DatabaseFile == "" {
		c.Catalog.DatabaseFile = defaultDatabaseFile
	}
}

func (c *Config) normalizeTMDB() {
	if c.TMDB.APIKey == "" {
		if value, ok := os.LookupEnv("TMDB_API_KEY"); ok {
			c.TMDB.APIKey = strings.TrimSpace(value)
		}
	}
	c.TMDB.BaseURL = strings.TrimSpace(c.TMDB.BaseURL)
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)
	if c.TMDB.Language == "" {
		c.TMDB.Language = defaultTMDBLanguage
	}
}

func (c *Config) normalizeScraper() {
	c.Scraper.BaseURL = strings.TrimRight(strings.TrimSpace(c.Scraper.BaseURL), "/")
	if c.Scraper.BaseURL == "" {
		c.Scraper.BaseURL = defaultScraperBaseURL
	}
	c.Scraper.UserAgent = strings.TrimSpace(c.Scraper.UserAgent)
	if c.Scraper.UserAgent == "" {
		c.Scraper.UserAgent = defaultScraperUserAgent
	}
	if c.Scraper.MaxPages <= 0 {
		c.Scraper.MaxPages = defaultScraperMaxPages
	}
	if c.Scraper.RequestTimeout <= 0 {
		c.Scraper.RequestTimeout = defaultScraperTimeout
	}
	if c.Scraper.MinDelayMillis <= 0 {
		c.Scraper.MinDelayMillis = defaultScraperMinDelayMs
	}
	if c.Scraper.MaxDelayMillis <= 0 {
		c.Scraper.MaxDelayMillis = defaultScraperMaxDelayMs
	}
	if c.Scraper.MaxDelayMillis < c.Scraper.MinDelayMillis {
		c.Scraper.MaxDelayMillis = c.Scraper.MinDelayMillis
	}
}

func (c *Config) normalizeAdvisor() {
	if c.Advisor.FuzzyThreshold == 0 {
		c.Advisor.FuzzyThreshold = defaultFuzzyThreshold
	}
	if c.Advisor.DefaultLimit <= 0 {
		c.Advisor.DefaultLimit = defaultRecommendLimit
	}
}

func (c *Config) normalizeInterests() {
	if c.Interests.TopGenres <= 0 {
		c.Interests.TopGenres = defaultInterestsTopGenres
	}
	if c.Interests.TopKeywords <= 0 {
		c.Interests.TopKeywords = defaultInterestsTopKeywords
	}
	if c.Interests.RateWeight == 0 && c.Interests.LikeWeight == 0 {
		c.Interests.RateWeight = defaultInterestsRateWeight
		c.Interests.LikeWeight = defaultInterestsLikeWeight
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
