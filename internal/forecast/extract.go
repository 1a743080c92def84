package forecast

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// forecastsSelector identifies the "Forecasts" tab of the page.
	forecastsSelector = "#wsod_forecasts"
	symbolNotFound    = "symbol not found"
)

// Extract returns the paragraph texts of the forecasts tab in document order.
// A "Symbol Not Found" h1 heading wins over any other page content. Heading
// text is trimmed of surrounding whitespace and compared case-insensitively,
// so "<h1> Symbol Not Found </h1>" counts as the sentinel.
func Extract(page string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, &Error{Kind: KindParse, Err: fmt.Errorf("reading html: %w", err)}
	}

	notFound := false
	doc.Find("h1").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		notFound = strings.ToLower(strings.TrimSpace(s.Text())) == symbolNotFound
		return !notFound
	})
	if notFound {
		return nil, &Error{Kind: KindSymbolNotFound}
	}

	tab := doc.Find(forecastsSelector).First()
	if tab.Length() == 0 {
		return nil, &Error{Kind: KindParse}
	}

	paragraphs := tab.Find("p")
	fragments := make([]string, 0, paragraphs.Length())
	paragraphs.Each(func(_ int, s *goquery.Selection) {
		fragments = append(fragments, s.Text())
	})
	return fragments, nil
}
