package forecast

import "context"

// Scraper runs fetch, extract and match for one symbol.
type Scraper struct {
	Client  *Client
	Matcher Matcher
}

// NewScraper wires a Scraper around client.
func NewScraper(client *Client, matcher Matcher) *Scraper {
	return &Scraper{Client: client, Matcher: matcher}
}

// Lookup returns the analyst price targets for symbol. Errors from every
// stage are returned unchanged.
func (s *Scraper) Lookup(ctx context.Context, symbol string) (PriceQuote, error) {
	page, err := s.Client.FetchPage(ctx, symbol)
	if err != nil {
		return PriceQuote{}, err
	}
	return extractAndMatch(page, s.Matcher)
}
