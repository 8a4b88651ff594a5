package scraper

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles Prometheus collectors for the scraper.
type Metrics struct {
	Registry          *prometheus.Registry
	PagesScraped      prometheus.Counter
	CardsSeen         prometheus.Counter
	PlacesCollected   prometheus.Counter
	ProtectChallenges prometheus.Counter
	StopsTotal        *prometheus.CounterVec
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		Registry: registry,
		PagesScraped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zoon_pages_scraped_total",
			Help: "Catalog pages processed successfully.",
		}),
		CardsSeen: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zoon_cards_seen_total",
			Help: "Listing cards encountered across all pages.",
		}),
		PlacesCollected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zoon_places_collected_total",
			Help: "Records accumulated after empty-name filtering.",
		}),
		ProtectChallenges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zoon_protect_challenges_total",
			Help: "Anti-bot challenge screens encountered.",
		}),
		StopsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zoon_run_stops_total",
			Help: "Run-terminating stops by reason.",
		}, []string{"reason"}),
	}

	registry.MustRegister(
		m.PagesScraped,
		m.CardsSeen,
		m.PlacesCollected,
		m.ProtectChallenges,
		m.StopsTotal,
	)
	return m
}
