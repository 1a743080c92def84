package forecast

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// pricePattern matches the analyst summary sentence once thousands
// separators are removed. Prices always carry exactly two decimals.
var pricePattern = regexp.MustCompile(
	`^The \d.* analysts offering 12-month price forecasts for .* have a median target of (?P<median>\d*\.\d{2})` +
		` with a high estimate of (?P<high>\d*\.\d{2}) and a low estimate of (?P<low>\d*\.\d{2})\. The median estimate` +
		` represents a .*% (?:in|de)crease from the last price of (?P<current>\d*\.\d{2})\.`,
)

const noForecastData = "there is no forecast data available."

// Matcher turns forecast fragments into a PriceQuote.
//
// By default the first fragment decides the outcome: a non-matching,
// non-sentinel fragment ends the scan with ErrNoMatch. With ScanAll set,
// such fragments are skipped and ErrNoMatch is returned only after every
// fragment was examined. A match or the "no forecast data" sentinel ends the
// scan in both modes.
type Matcher struct {
	ScanAll bool
}

// Match runs the default Matcher.
func Match(fragments []string) (PriceQuote, error) {
	return Matcher{}.Match(fragments)
}

func (m Matcher) Match(fragments []string) (PriceQuote, error) {
	for _, fragment := range fragments {
		text := strings.ReplaceAll(fragment, ",", "")

		quote, ok, err := parseQuote(text)
		if err != nil {
			return PriceQuote{}, err
		}
		if ok {
			return quote, nil
		}

		if strings.ToLower(text) == noForecastData {
			return PriceQuote{}, &Error{Kind: KindNoForecastData}
		}

		if !m.ScanAll {
			break
		}
	}
	return PriceQuote{}, &Error{Kind: KindNoMatch}
}

// parseQuote reports ok=false when text does not match the pattern.
func parseQuote(text string) (PriceQuote, bool, error) {
	sub := pricePattern.FindStringSubmatch(text)
	if sub == nil {
		return PriceQuote{}, false, nil
	}

	groups := make(map[string]string, 4)
	for i, name := range pricePattern.SubexpNames() {
		if name != "" {
			groups[name] = sub[i]
		}
	}

	var quote PriceQuote
	for _, f := range []struct {
		name string
		dst  *decimal.Decimal
	}{
		{"current", &quote.Current},
		{"median", &quote.Median},
		{"high", &quote.High},
		{"low", &quote.Low},
	} {
		raw, ok := groups[f.name]
		if !ok {
			return PriceQuote{}, false, nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return PriceQuote{}, false, &Error{Kind: KindParse, Err: fmt.Errorf("decoding %s: %w", f.name, err)}
		}
		*f.dst = d
	}
	return quote, true, nil
}
