package zoon

import (
	"errors"
	"testing"

	"ZoonScraper/internal/scraper"
	"ZoonScraper/pkg/config"
)

func TestIsProtectScreen(t *testing.T) {
	testCases := []struct {
		name string
		html string
		want bool
	}{
		{"Russian Robot Check", `<html><body>Мы проверяем, что вы не робот</body></html>`, true},
		{"Cloudflare", `<html><head><title>Just a moment</title></head><body>cloudflare</body></html>`, true},
		{"Checking Browser Mixed Case", `<html><body>Checking Your Browser before accessing</body></html>`, true},
		{"Redirect Notice", `<html><body>You will be redirected shortly</body></html>`, true},
		{"Russian Wait Notice", `<html><body>Подождите несколько секунд…</body></html>`, true},
		{"Catalog Content", `<html><body><ul class="js-results-group"><li class="minicard-item">Кафе</li></ul></body></html>`, false},
		{"Empty Page", ``, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsProtectScreen(tc.html); got != tc.want {
				t.Errorf("IsProtectScreen(...) = %v; want %v", got, tc.want)
			}
		})
	}
}

const (
	challengeHTML = `<html><body>Мы проверяем, что вы не робот</body></html>`
	catalogHTML   = `<html><body><ul class="js-results-group"></ul></body></html>`
)

// newProtectScraper wires a Scraper to a canned sequence of page contents:
// each protect check consumes the next entry, the last one is sticky.
func newProtectScraper(headless bool, contents []string) (*Scraper, *int, *bool) {
	reloads := 0
	confirmed := false
	reads := 0

	s := &Scraper{
		ScraperConf: config.ScraperConfig{
			Headless:              headless,
			ProtectPollAttempts:   2,
			ProtectPollDelay:      config.Range{},
			ProtectManualAttempts: 2,
			ProtectManualDelay:    config.Range{},
		},
		Confirm: func() { confirmed = true },
		pageHTML: func() (string, error) {
			i := reads
			if i >= len(contents) {
				i = len(contents) - 1
			}
			reads++
			return contents[i], nil
		},
		reload: func() error {
			reloads++
			return nil
		},
	}
	return s, &reloads, &confirmed
}

func TestWaitProtectClear(t *testing.T) {
	testCases := []struct {
		name          string
		headless      bool
		contents      []string
		wantErr       error
		wantConfirmed bool
		wantReloads   int
	}{
		{
			name:     "Clear Immediately",
			contents: []string{catalogHTML},
		},
		{
			name:     "Cleared By Poll",
			contents: []string{challengeHTML, challengeHTML, catalogHTML},
		},
		{
			name:     "Headless Blocked",
			headless: true,
			contents: []string{challengeHTML},
			wantErr:  scraper.ErrProtectBlocked,
		},
		{
			name: "Cleared After Manual Reload",
			contents: []string{
				challengeHTML, challengeHTML, challengeHTML, // initial + both polls
				challengeHTML, // first manual check, triggers a reload
				catalogHTML,   // second manual check
			},
			wantConfirmed: true,
			wantReloads:   1,
		},
		{
			name:          "Manual Budget Exhausted",
			contents:      []string{challengeHTML},
			wantErr:       scraper.ErrProtectBlocked,
			wantConfirmed: true,
			wantReloads:   2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, reloads, confirmed := newProtectScraper(tc.headless, tc.contents)

			err := s.waitProtectClear(1)

			if !errors.Is(err, tc.wantErr) {
				t.Errorf("waitProtectClear() = %v; want %v", err, tc.wantErr)
			}
			if *confirmed != tc.wantConfirmed {
				t.Errorf("operator confirm called = %v; want %v", *confirmed, tc.wantConfirmed)
			}
			if *reloads != tc.wantReloads {
				t.Errorf("reloads = %d; want %d", *reloads, tc.wantReloads)
			}
		})
	}
}
