package zoon

import (
	"ZoonScraper/internal/scraper"

	"github.com/go-rod/rod"
)

// pageNode and elementNode adapt rod to the scraper lookup surfaces.
// Element lookups use the not-found sleeper so a missing selector reports
// immediately instead of waiting out a timeout, matching the best-effort
// contract of the card parsers.

// pageNode is the document root. It is only a scraper.Finder: a whole page
// has no meaningful text of its own.
type pageNode struct {
	page *rod.Page
}

func (n pageNode) All(selector string) ([]scraper.Node, error) {
	els, err := n.page.Elements(selector)
	if err != nil {
		return nil, err
	}
	return wrapElements(els), nil
}

type elementNode struct {
	el *rod.Element
}

func (n elementNode) First(selector string) (scraper.Node, error) {
	el, err := n.el.Sleeper(rod.NotFoundSleeper).Element(selector)
	if err != nil {
		return nil, err
	}
	return elementNode{el: el}, nil
}

func (n elementNode) All(selector string) ([]scraper.Node, error) {
	els, err := n.el.Elements(selector)
	if err != nil {
		return nil, err
	}
	return wrapElements(els), nil
}

func (n elementNode) Text() (string, error) {
	return n.el.Text()
}

func wrapElements(els rod.Elements) []scraper.Node {
	nodes := make([]scraper.Node, 0, len(els))
	for _, el := range els {
		nodes = append(nodes, elementNode{el: el})
	}
	return nodes
}
