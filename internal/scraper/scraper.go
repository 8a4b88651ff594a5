package scraper

import "ZoonScraper/internal/models"

// PageScraper defines the basic behavior for all catalog scrapers.
// It ensures that any new scraper we add (e.g., for another city or
// another catalog site) will follow a standard structure.
type PageScraper interface {
	// ScrapePage loads catalog page n and returns one Place per card found,
	// including cards whose name could not be extracted (the caller decides
	// what to keep). A stop error (see errors.go) means the whole run must
	// terminate.
	ScrapePage(n int) ([]models.Place, error)
}

// Finder locates descendants by selector. It is all a document root has to
// offer; card collection needs nothing more.
type Finder interface {
	// All returns every descendant matching the selector.
	All(selector string) ([]Node, error)
}

// Node is the minimal element-lookup surface the card parsers need. Lookups
// are immediate, best-effort operations: a selector that resolves to nothing
// is reported through the error or an empty slice, never by blocking.
// The production implementation wraps rod elements; tests use an in-memory
// goquery document.
type Node interface {
	Finder
	// First returns the first descendant matching the selector.
	First(selector string) (Node, error)
	// Text returns the rendered text of the node.
	Text() (string, error)
}
