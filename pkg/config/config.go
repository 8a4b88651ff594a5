package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Range is an inclusive interval used for randomized delays (milliseconds)
// and scroll step counts.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// ScraperConfig holds general browser and pacing settings.
type ScraperConfig struct {
	Headless    bool   `yaml:"headless"`
	MetricsAddr string `yaml:"metrics_addr"`

	WaitTimeoutSec int `yaml:"wait_timeout_sec"`

	InitialSleep     Range `yaml:"initial_sleep"`
	PageSleep        Range `yaml:"page_sleep"`
	ScrollSleep      Range `yaml:"scroll_sleep"`
	ScrollResetSleep Range `yaml:"scroll_reset_sleep"`
	ScrollSteps      Range `yaml:"scroll_steps"`

	ProtectPollAttempts   int   `yaml:"protect_poll_attempts"`
	ProtectPollDelay      Range `yaml:"protect_poll_delay"`
	ProtectManualAttempts int   `yaml:"protect_manual_attempts"`
	ProtectManualDelay    Range `yaml:"protect_manual_delay"`
}

// ZoonConfig holds settings specific to the zoon.ru catalog.
type ZoonConfig struct {
	BaseURL        string   `yaml:"base_url"`
	TotalPages     int      `yaml:"total_pages"`
	AcceptLanguage string   `yaml:"accept_language"`
	UserAgents     []string `yaml:"user_agents"`
}

// PageURL computes the address of page n. Page 1 is the bare catalog URL,
// later pages get a /page-N/ suffix.
func (c ZoonConfig) PageURL(n int) string {
	if n <= 1 {
		return c.BaseURL
	}
	return fmt.Sprintf("%s/page-%d/", strings.TrimRight(c.BaseURL, "/"), n)
}

// OutputConfig holds the snapshot destinations.
type OutputConfig struct {
	Dir          string `yaml:"dir"`
	CSVFilename  string `yaml:"csv_filename"`
	LogFilename  string `yaml:"log_filename"`
	DatabasePath string `yaml:"database_path"`
}

// Config is the complete structure for the config.yml file.
type Config struct {
	Scraper ScraperConfig `yaml:"scraper"`
	Zoon    ZoonConfig    `yaml:"zoon"`
	Output  OutputConfig  `yaml:"output"`
}

// LoadConfig reads and parses the YAML config file.
func LoadConfig(filepath string) *Config {
	data, err := os.ReadFile(filepath)
	if err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}
	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Error unmarshalling config YAML: %v", err)
	}
	return &cfg
}

// Validate ensures all configuration values are coherent.
func (c *Config) Validate() error {
	if c.Zoon.BaseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}
	parsedURL, err := url.Parse(c.Zoon.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("base URL must include a host")
	}
	if c.Zoon.TotalPages <= 0 {
		return fmt.Errorf("total pages must be positive")
	}
	if c.Scraper.WaitTimeoutSec <= 0 {
		return fmt.Errorf("wait timeout must be positive")
	}
	if c.Scraper.ProtectPollAttempts < 0 || c.Scraper.ProtectManualAttempts < 0 {
		return fmt.Errorf("protect attempt counts cannot be negative")
	}
	ranges := map[string]Range{
		"initial_sleep":        c.Scraper.InitialSleep,
		"page_sleep":           c.Scraper.PageSleep,
		"scroll_sleep":         c.Scraper.ScrollSleep,
		"scroll_reset_sleep":   c.Scraper.ScrollResetSleep,
		"scroll_steps":         c.Scraper.ScrollSteps,
		"protect_poll_delay":   c.Scraper.ProtectPollDelay,
		"protect_manual_delay": c.Scraper.ProtectManualDelay,
	}
	for name, r := range ranges {
		if r.Min < 0 || r.Max < r.Min {
			return fmt.Errorf("%s range is invalid: min=%d max=%d", name, r.Min, r.Max)
		}
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}
	if c.Output.CSVFilename == "" || c.Output.LogFilename == "" {
		return fmt.Errorf("output filenames cannot be empty")
	}
	return nil
}
