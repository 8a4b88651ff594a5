package scraper

import "errors"

// Stop errors terminate the whole run, not just the current page.
// Already-accumulated records survive and are persisted by the caller.
var (
	// ErrProtectBlocked means the anti-bot challenge never cleared within
	// the configured automatic and manual retry budgets.
	ErrProtectBlocked = errors.New("protect screen not cleared")

	// ErrContainerNotFound means none of the results-container selectors
	// resolved within their timeouts.
	ErrContainerNotFound = errors.New("cards container not found")

	// ErrNoCards means the container was present but held no cards.
	ErrNoCards = errors.New("no cards on page")
)

// StopReason maps a run-terminating error to a short label used in log
// entries and metrics.
func StopReason(err error) string {
	switch {
	case errors.Is(err, ErrProtectBlocked):
		return "protect_blocked"
	case errors.Is(err, ErrContainerNotFound):
		return "container_not_found"
	case errors.Is(err, ErrNoCards):
		return "no_cards"
	default:
		return "other"
	}
}
