package app

import (
	"fmt"
	"log"
	"net/http"

	"ZoonScraper/internal/database"
	"ZoonScraper/internal/models"
	"ZoonScraper/internal/output"
	"ZoonScraper/internal/scraper"
	"ZoonScraper/internal/scraper/zoon"
	"ZoonScraper/pkg/config"
	"ZoonScraper/utils"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App is the main application structure holding all dependencies.
type App struct {
	Config  *config.Config
	Repo    *database.PlaceRepository
	Saver   *output.Saver
	Metrics *scraper.Metrics
}

// New creates a new application instance with all initial settings.
func New(configPath string) *App {
	cfg := config.LoadConfig(configPath)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	saver, err := output.NewSaver(cfg.Output)
	if err != nil {
		log.Fatalf("Failed to prepare output directory: %v", err)
	}

	var repo *database.PlaceRepository
	if cfg.Output.DatabasePath != "" {
		repo = database.InitDB(cfg.Output.DatabasePath)
	}

	return &App{
		Config:  cfg,
		Repo:    repo,
		Saver:   saver,
		Metrics: scraper.NewMetrics(),
	}
}

// Close releases everything New opened.
func (a *App) Close() {
	if a.Repo != nil {
		a.Repo.Close()
	}
}

// RunCatalogScraper owns the browser for the whole run: launch, walk the
// pages, release the browser, then write the final snapshot. The browser is
// released exactly once, even when the walk panics; only the final save
// depends on a clean exit.
func (a *App) RunCatalogScraper() {
	log.Println("--- Starting Catalog Scraping Task ---")

	utils.CheckSystemResources()
	a.serveMetrics()

	u := launcher.New().
		Headless(a.Config.Scraper.Headless).
		NoSandbox(true).
		Set("disable-dev-shm-usage").
		Set("lang", "ru-RU").
		Set("disable-blink-features", "AutomationControlled").
		MustLaunch()
	browser := rod.New().ControlURL(u).MustConnect()

	places, logs := func() ([]models.Place, []string) {
		defer releaseBrowser(browser)

		z, err := zoon.New(browser, a.Config.Scraper, a.Config.Zoon, a.Metrics)
		if err != nil {
			log.Printf("Failed to create zoon scraper: %v", err)
			return nil, []string{fmt.Sprintf("browser session setup failed: %v", err)}
		}
		return a.RunPages(z)
	}()

	if err := a.Saver.SaveFinal(places, logs); err != nil {
		log.Printf("Final save failed: %v", err)
	}
	log.Printf("Final CSV: %s | rows: %d", a.Saver.FinalCSVPath(), len(places))
	log.Printf("Final LOG: %s | entries: %d", a.Saver.FinalLogPath(), len(logs))

	if a.Repo != nil {
		if count, err := a.Repo.CountPlaces(); err == nil {
			log.Printf("Archive now holds %d places.", count)
		}
	}
	log.Println("--- Catalog Scraping Task Finished ---")
}

// RunPages walks pages 1..TotalPages in strict order and accumulates records
// and log entries. Any error from the page scraper ends the walk; whatever
// was collected so far is returned for the final save.
func (a *App) RunPages(s scraper.PageScraper) ([]models.Place, []string) {
	var places []models.Place
	var logs []string

	for page := 1; page <= a.Config.Zoon.TotalPages; page++ {
		pagePlaces, err := s.ScrapePage(page)
		if err != nil {
			reason := scraper.StopReason(err)
			log.Printf("Page %d: %v. Stopping the run.", page, err)
			logs = append(logs, fmt.Sprintf("page %d: stopped (%s)", page, reason))
			if a.Metrics != nil {
				a.Metrics.StopsTotal.WithLabelValues(reason).Inc()
			}
			break
		}

		added := 0
		for _, place := range pagePlaces {
			if place.Name == "" {
				continue
			}
			places = append(places, place)
			added++
			if a.Repo != nil {
				if err := a.Repo.SavePlace(place); err != nil {
					log.Printf("WARN: Archive save for %q failed: %v", place.Name, err)
				}
			}
		}

		if a.Metrics != nil {
			a.Metrics.PagesScraped.Inc()
			a.Metrics.CardsSeen.Add(float64(len(pagePlaces)))
			a.Metrics.PlacesCollected.Add(float64(added))
		}

		logs = append(logs, fmt.Sprintf("page %d: cards %d, added %d, total %d",
			page, len(pagePlaces), added, len(places)))
		log.Printf("Page %d: found %d cards, added %d, total %d.",
			page, len(pagePlaces), added, len(places))

		if err := a.Saver.SavePartial(page, places, logs); err != nil {
			log.Printf("WARN: Partial save after page %d failed: %v", page, err)
		}

		utils.HumanSleep(a.Config.Scraper.PageSleep.Min, a.Config.Scraper.PageSleep.Max)
	}

	return places, logs
}

// releaseBrowser is best-effort: a failed close must never mask the actual
// run outcome.
func releaseBrowser(browser *rod.Browser) {
	if err := browser.Close(); err != nil {
		log.Printf("WARN: Browser close failed: %v", err)
	}
}

func (a *App) serveMetrics() {
	addr := a.Config.Scraper.MetricsAddr
	if addr == "" {
		return
	}
	go func() {
		handler := promhttp.HandlerFor(a.Metrics.Registry, promhttp.HandlerOpts{})
		if err := http.ListenAndServe(addr, handler); err != nil {
			log.Printf("Metrics server failed: %v", err)
		}
	}()
	log.Printf("Metrics server enabled on %s", addr)
}
