package zoon

import (
	"strings"

	"ZoonScraper/internal/models"
	"ZoonScraper/internal/scraper"
	"ZoonScraper/utils"
)

// CollectCards returns the card nodes of the current page: the first card
// selector with a non-empty match set wins. An empty result means the page
// carries no listings and the run should stop.
func CollectCards(root scraper.Finder) []scraper.Node {
	for _, sel := range cardSelectors {
		items, err := root.All(sel)
		if err == nil && len(items) > 0 {
			return items
		}
	}
	return nil
}

// ParseCard extracts name, rating and categories from a single card. Rating
// and categories are best-effort: a selector that resolves to nothing leaves
// the field empty. A card without a name is still returned; the run loop
// discards it.
func ParseCard(card scraper.Node) models.Place {
	return models.Place{
		Name:       extractName(card),
		Rating:     extractRating(card),
		Categories: extractCategories(card),
	}
}

func extractName(card scraper.Node) string {
	for _, sel := range titleSelectors {
		el, err := card.First(sel)
		if err != nil {
			continue
		}
		text, err := el.Text()
		if err != nil {
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func extractRating(card scraper.Node) *float64 {
	el, err := card.First(ratingSelector)
	if err != nil {
		return nil
	}
	text, err := el.Text()
	if err != nil {
		return nil
	}
	rating, ok := utils.ParseRating(strings.TrimSpace(text))
	if !ok {
		return nil
	}
	return &rating
}

func extractCategories(card scraper.Node) models.JSONStringSlice {
	links, err := card.All(featuresSelector)
	if err != nil {
		return nil
	}
	var raw []string
	for _, link := range links {
		text, err := link.Text()
		if err != nil {
			continue
		}
		if trimmed := strings.Trim(text, categoryCutset); trimmed != "" {
			raw = append(raw, trimmed)
		}
	}
	if len(raw) == 0 {
		return nil
	}
	return utils.UniqueStrings(raw)
}
