package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPageURL(t *testing.T) {
	testCases := []struct {
		name string
		base string
		page int
		want string
	}{
		{"First Page", "https://zoon.ru/tomsk/restaurants/", 1, "https://zoon.ru/tomsk/restaurants/"},
		{"Second Page", "https://zoon.ru/tomsk/restaurants/", 2, "https://zoon.ru/tomsk/restaurants/page-2/"},
		{"Double Digit Page", "https://zoon.ru/tomsk/restaurants/", 34, "https://zoon.ru/tomsk/restaurants/page-34/"},
		{"No Trailing Slash", "https://zoon.ru/tomsk/restaurants", 5, "https://zoon.ru/tomsk/restaurants/page-5/"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := ZoonConfig{BaseURL: tc.base}
			if got := c.PageURL(tc.page); got != tc.want {
				t.Errorf("PageURL(%d) = %q; want %q", tc.page, got, tc.want)
			}
		})
	}
}

func validConfig() *Config {
	return &Config{
		Scraper: ScraperConfig{
			WaitTimeoutSec:        25,
			InitialSleep:          Range{Min: 1500, Max: 3000},
			PageSleep:             Range{Min: 2800, Max: 5200},
			ScrollSleep:           Range{Min: 600, Max: 1200},
			ScrollResetSleep:      Range{Min: 500, Max: 1100},
			ScrollSteps:           Range{Min: 4, Max: 7},
			ProtectPollAttempts:   10,
			ProtectPollDelay:      Range{Min: 2200, Max: 4200},
			ProtectManualAttempts: 6,
			ProtectManualDelay:    Range{Min: 3500, Max: 5500},
		},
		Zoon: ZoonConfig{
			BaseURL:    "https://zoon.ru/tomsk/restaurants/",
			TotalPages: 34,
		},
		Output: OutputConfig{
			Dir:         "zoon_out",
			CSVFilename: "zoon_tomsk_restaurants.csv",
			LogFilename: "zoon_loader_log.txt",
		},
	}
}

func TestValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		if err := validConfig().Validate(); err != nil {
			t.Errorf("Validate() = %v; want nil", err)
		}
	})

	t.Run("Empty Base URL", func(t *testing.T) {
		cfg := validConfig()
		cfg.Zoon.BaseURL = ""
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() = nil; want error")
		}
	})

	t.Run("Zero Pages", func(t *testing.T) {
		cfg := validConfig()
		cfg.Zoon.TotalPages = 0
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() = nil; want error")
		}
	})

	t.Run("Inverted Range", func(t *testing.T) {
		cfg := validConfig()
		cfg.Scraper.PageSleep = Range{Min: 5000, Max: 1000}
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() = nil; want error")
		}
	})

	t.Run("Missing Output Dir", func(t *testing.T) {
		cfg := validConfig()
		cfg.Output.Dir = ""
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() = nil; want error")
		}
	})
}

func TestLoadConfig(t *testing.T) {
	yml := `
scraper:
  headless: true
  wait_timeout_sec: 25
  page_sleep: { min: 2800, max: 5200 }
  protect_poll_attempts: 10
zoon:
  base_url: "https://zoon.ru/tomsk/restaurants/"
  total_pages: 34
  user_agents:
    - "Mozilla/5.0 test"
output:
  dir: "zoon_out"
  csv_filename: "zoon_tomsk_restaurants.csv"
  log_filename: "zoon_loader_log.txt"
`
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg := LoadConfig(path)

	if !cfg.Scraper.Headless {
		t.Error("Headless = false; want true")
	}
	if cfg.Zoon.TotalPages != 34 {
		t.Errorf("TotalPages = %d; want 34", cfg.Zoon.TotalPages)
	}
	if cfg.Scraper.PageSleep != (Range{Min: 2800, Max: 5200}) {
		t.Errorf("PageSleep = %+v; want {2800 5200}", cfg.Scraper.PageSleep)
	}
	if len(cfg.Zoon.UserAgents) != 1 {
		t.Errorf("UserAgents length = %d; want 1", len(cfg.Zoon.UserAgents))
	}
}
