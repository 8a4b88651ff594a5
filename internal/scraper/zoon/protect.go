package zoon

import (
	"log"
	"strings"

	"ZoonScraper/internal/scraper"
	"ZoonScraper/utils"
)

// protectMarkers are substrings of the "we are checking you are not a robot"
// interstitial. Matching any of them counts as a challenge; false positives
// only cost an extra wait, which is the safer direction.
var protectMarkers = []string{
	"мы проверяем, что вы не робот",
	"checking your browser",
	"you will be redirected",
	"cloudflare",
	"подождите несколько секунд",
}

// IsProtectScreen reports whether the given page HTML is an anti-bot
// challenge rather than real catalog content. Pure substring containment,
// no structural parsing.
func IsProtectScreen(html string) bool {
	lowered := strings.ToLower(html)
	for _, marker := range protectMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

func (s *Scraper) isProtectScreen() bool {
	html, err := s.pageHTML()
	if err != nil {
		log.Printf("WARN: Could not read page HTML for protect check: %v", err)
		return false
	}
	return IsProtectScreen(html)
}

// waitProtectClear polls for the challenge to clear on its own, then falls
// back to asking the operator when a browser window is visible. Returns
// scraper.ErrProtectBlocked when every budget is exhausted.
func (s *Scraper) waitProtectClear(page int) error {
	if !s.isProtectScreen() {
		return nil
	}

	if s.Metrics != nil {
		s.Metrics.ProtectChallenges.Inc()
	}
	log.Printf("Page %d: protect screen detected, waiting for auto-redirect...", page)

	for i := 0; i < s.ScraperConf.ProtectPollAttempts; i++ {
		utils.HumanSleep(s.ScraperConf.ProtectPollDelay.Min, s.ScraperConf.ProtectPollDelay.Max)
		if !s.isProtectScreen() {
			return nil
		}
	}

	if s.ScraperConf.Headless {
		log.Printf("Page %d: protect screen not cleared and no window to solve it in.", page)
		return scraper.ErrProtectBlocked
	}

	log.Printf("Page %d: solve the check in the browser window, then press Enter here...", page)
	s.Confirm()

	for i := 0; i < s.ScraperConf.ProtectManualAttempts; i++ {
		utils.HumanSleep(s.ScraperConf.ProtectManualDelay.Min, s.ScraperConf.ProtectManualDelay.Max)
		if !s.isProtectScreen() {
			return nil
		}
		if err := s.reload(); err != nil {
			log.Printf("WARN: Reload during protect retry failed: %v", err)
		}
	}

	log.Printf("Page %d: protect screen not cleared after manual confirmation.", page)
	return scraper.ErrProtectBlocked
}
