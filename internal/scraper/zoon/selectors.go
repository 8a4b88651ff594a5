package zoon

// CSS selectors used across the scraper, ordered by how likely they are to
// survive a catalog redesign. Centralising them makes future updates trivial.
var (
	// The element wrapping the list of cards; its presence is the page
	// readiness signal.
	containerSelectors = []string{
		"ul.js-results-group",
		"div.catalog-list",
		"div.results-container",
	}

	cardSelectors = []string{
		"li.minicard-item.js-results-item",
		"div.minicard-item",
	}

	titleSelectors = []string{
		"a.title-link.js-item-url",
		".minicard-item__title",
		"h2",
	}
)

const (
	ratingSelector   = ".minicard-item__rating, .rating, .stars"
	featuresSelector = ".minicard-item__features a, .service-items a, .tags a"
)

// categoryCutset is trimmed from both ends of every category link text.
const categoryCutset = " ·—-\n\t"
