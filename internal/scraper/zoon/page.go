package zoon

import (
	"fmt"
	"log"
	"time"

	"ZoonScraper/internal/models"
	"ZoonScraper/internal/scraper"
	"ZoonScraper/utils"
)

// ScrapePage drives the fixed per-page pipeline: navigate, survive the
// protect screen, wait for the results container, scroll to force lazy
// rendering, then parse every card. Stop errors from the scraper package
// tell the caller to terminate the whole run.
func (s *Scraper) ScrapePage(n int) ([]models.Place, error) {
	url := s.ZoonConf.PageURL(n)
	log.Printf("Opening page %d: %s", n, url)

	if err := s.page.Timeout(40 * time.Second).Navigate(url); err != nil {
		return nil, fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	if err := s.page.Timeout(40 * time.Second).WaitLoad(); err != nil {
		log.Printf("WARN: Wait for load on page %d: %v", n, err)
	}
	utils.HumanSleep(s.ScraperConf.InitialSleep.Min, s.ScraperConf.InitialSleep.Max)

	if err := s.waitProtectClear(n); err != nil {
		return nil, err
	}

	if err := s.waitCardsContainer(); err != nil {
		return nil, err
	}

	s.gentleScroll()

	cards := CollectCards(pageNode{page: s.page})
	if len(cards) == 0 {
		return nil, scraper.ErrNoCards
	}

	places := make([]models.Place, 0, len(cards))
	for _, card := range cards {
		places = append(places, ParseCard(card))
	}
	return places, nil
}

// waitCardsContainer tries each container selector with the configured
// timeout; the first one that resolves wins.
func (s *Scraper) waitCardsContainer() error {
	timeout := time.Duration(s.ScraperConf.WaitTimeoutSec) * time.Second
	for _, sel := range containerSelectors {
		if _, err := s.page.Timeout(timeout).Element(sel); err == nil {
			return nil
		}
	}
	return scraper.ErrContainerNotFound
}

// gentleScroll walks the viewport down the page in a few evenly spaced smooth
// steps and returns to the top. Its only job is to trigger lazy-loaded card
// rendering; there is nothing to verify afterwards.
func (s *Scraper) gentleScroll() {
	height := 1000.0
	if res, err := s.page.Eval(`() => document.body.scrollHeight`); err == nil {
		if h := res.Value.Num(); h > 0 {
			height = h
		}
	}

	steps := utils.RandBetween(s.ScraperConf.ScrollSteps.Min, s.ScraperConf.ScrollSteps.Max)
	for i := 0; i < steps; i++ {
		y := int(height * float64(i+1) / float64(steps+1))
		if _, err := s.page.Eval(`(y) => window.scrollTo({top: y, behavior: "smooth"})`, y); err != nil {
			log.Printf("WARN: Scroll step failed: %v", err)
		}
		utils.HumanSleep(s.ScraperConf.ScrollSleep.Min, s.ScraperConf.ScrollSleep.Max)
	}

	if _, err := s.page.Eval(`() => window.scrollTo({top: 0, behavior: "smooth"})`); err != nil {
		log.Printf("WARN: Scroll reset failed: %v", err)
	}
	utils.HumanSleep(s.ScraperConf.ScrollResetSleep.Min, s.ScraperConf.ScrollResetSleep.Max)
}
