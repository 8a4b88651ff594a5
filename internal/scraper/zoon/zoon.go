package zoon

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"ZoonScraper/internal/scraper"
	"ZoonScraper/pkg/config"
	"ZoonScraper/utils"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// Scraper walks the zoon.ru catalog page by page over a single stealth tab.
type Scraper struct {
	Browser     *rod.Browser
	ScraperConf config.ScraperConfig
	ZoonConf    config.ZoonConfig
	Metrics     *scraper.Metrics

	// Confirm blocks until the operator signals that a manual anti-bot
	// check has been passed. Tests replace it with a no-op.
	Confirm func()

	page *rod.Page

	// pageHTML and reload default to the live page's methods; tests swap
	// them to drive the protect retry machine without a browser.
	pageHTML func() (string, error)
	reload   func() error
}

// New opens a stealth page on the given browser and applies the
// user-agent/language override the catalog expects from a regular visitor.
func New(browser *rod.Browser, scraperConf config.ScraperConfig, zoonConf config.ZoonConfig, metrics *scraper.Metrics) (*Scraper, error) {
	page, err := stealth.Page(browser)
	if err != nil {
		return nil, fmt.Errorf("failed to open stealth page: %w", err)
	}

	if len(zoonConf.UserAgents) > 0 {
		ua := zoonConf.UserAgents[utils.RandBetween(0, len(zoonConf.UserAgents)-1)]
		override := &proto.NetworkSetUserAgentOverride{
			UserAgent:      ua,
			AcceptLanguage: zoonConf.AcceptLanguage,
			Platform:       "Win32",
		}
		if err := page.SetUserAgent(override); err != nil {
			return nil, fmt.Errorf("failed to override user agent: %w", err)
		}
		log.Printf("User agent set to: %s", ua)
	}

	return &Scraper{
		Browser:     browser,
		ScraperConf: scraperConf,
		ZoonConf:    zoonConf,
		Metrics:     metrics,
		Confirm:     waitForEnter,
		page:        page,
		pageHTML:    page.HTML,
		reload:      page.Reload,
	}, nil
}

// waitForEnter suspends the run until the operator presses Enter in the
// terminal. There is deliberately no timeout here.
func waitForEnter() {
	reader := bufio.NewReader(os.Stdin)
	_, _ = reader.ReadString('\n')
}
