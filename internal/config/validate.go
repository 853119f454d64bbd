package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAdvisor(); err != nil {
		return err
	}
	if err := c.validateScraper(); err != nil {
		return err
	}
	if err := c.validateInterests(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAdvisor() error {
	if c.Advisor.FuzzyThreshold < 0 || c.Advisor.FuzzyThreshold > 1 {
		return errors.New("advisor.fuzzy_threshold must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateScraper() error {
	if c.Scraper.MaxPages > 40 {
		return fmt.Errorf("scraper.max_pages is %d; values above 40 exceed the IMDb top-1000 listing", c.Scraper.MaxPages)
	}
	return nil
}

func (c *Config) validateInterests() error {
	if c.Interests.RateWeight < 0 || c.Interests.LikeWeight < 0 {
		return errors.New("interests weights must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
}
