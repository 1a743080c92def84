package forecast

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PriceQuote holds the analyst price targets parsed from a forecast page.
// Values keep the scale they were written with.
type PriceQuote struct {
	Current decimal.Decimal
	Median  decimal.Decimal
	High    decimal.Decimal
	Low     decimal.Decimal
}

// Map returns the quote keyed by current, median, high and low.
func (q PriceQuote) Map() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"current": q.Current,
		"median":  q.Median,
		"high":    q.High,
		"low":     q.Low,
	}
}

// Equal compares values, not representations.
func (q PriceQuote) Equal(o PriceQuote) bool {
	return q.Current.Equal(o.Current) && q.Median.Equal(o.Median) &&
		q.High.Equal(o.High) && q.Low.Equal(o.Low)
}

type quoteJSON struct {
	Current string `json:"current"`
	Median  string `json:"median"`
	High    string `json:"high"`
	Low     string `json:"low"`
}

// MarshalJSON writes each price as a string with its original scale,
// so 34.50 stays "34.50" instead of decimal's default "34.5".
func (q PriceQuote) MarshalJSON() ([]byte, error) {
	return json.Marshal(quoteJSON{
		Current: scaled(q.Current),
		Median:  scaled(q.Median),
		High:    scaled(q.High),
		Low:     scaled(q.Low),
	})
}

func scaled(d decimal.Decimal) string {
	places := -d.Exponent()
	if places < 0 {
		places = 0
	}
	return d.StringFixed(places)
}
