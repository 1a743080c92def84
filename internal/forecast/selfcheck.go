package forecast

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

//go:embed fixtures/*.html
var fixtures embed.FS

type selfCheckCase struct {
	fixture string
	want    Kind
	quote   PriceQuote
}

var selfCheckCases = []selfCheckCase{
	{
		fixture: "fixtures/forecast_t.html",
		quote: PriceQuote{
			Current: decimal.RequireFromString("30.00"),
			Median:  decimal.RequireFromString("34.50"),
			High:    decimal.RequireFromString("50.00"),
			Low:     decimal.RequireFromString("20.00"),
		},
	},
	{fixture: "fixtures/symbol_not_found.html", want: KindSymbolNotFound},
	{fixture: "fixtures/no_forecast_data.html", want: KindNoForecastData},
	{fixture: "fixtures/no_forecasts_tab.html", want: KindParse},
}

// offlineClient fails every request; the self-check must never reach the network.
type offlineClient struct{}

func (offlineClient) Do(req *http.Request) (*http.Response, error) {
	return nil, fmt.Errorf("unexpected request to %s", req.URL)
}

// statusClient answers every request with the same status and no body.
type statusClient struct {
	code   int
	reason string
}

func (c statusClient) Do(*http.Request) (*http.Response, error) {
	return &http.Response{
		Status:     fmt.Sprintf("%d %s", c.code, c.reason),
		StatusCode: c.code,
		Body:       http.NoBody,
	}, nil
}

// SelfCheck runs the extract and match stages against the embedded fixture
// pages and the fetch stage against an empty symbol and stubbed error
// responses, without network access.
// The returned error joins every failed case.
func SelfCheck(ctx context.Context) error {
	var errs []error

	_, err := NewClient(WithHTTPClient(offlineClient{})).FetchPage(ctx, "")
	if !errors.Is(err, ErrInvalidSymbol) {
		errs = append(errs, fmt.Errorf("empty symbol: want %s, got %v", KindInvalidSymbol, err))
	}

	for _, sc := range []statusClient{
		{code: http.StatusInternalServerError, reason: "Internal Server Error"},
		{code: http.StatusNotFound, reason: "Not Found"},
	} {
		if err := checkStatusFailure(ctx, sc); err != nil {
			errs = append(errs, fmt.Errorf("status %d: %w", sc.code, err))
		}
	}

	for _, tc := range selfCheckCases {
		if err := runSelfCheckCase(tc); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", tc.fixture, err))
		}
	}
	return errors.Join(errs...)
}

func checkStatusFailure(ctx context.Context, sc statusClient) error {
	_, err := NewClient(WithHTTPClient(sc)).FetchPage(ctx, "TSLA")

	var fe *Error
	if !errors.As(err, &fe) || fe.Kind != KindNetwork {
		return fmt.Errorf("want %s, got %v", KindNetwork, err)
	}
	if fe.StatusCode != sc.code || fe.Reason != sc.reason {
		return fmt.Errorf("want status %d reason %q, got status %d reason %q", sc.code, sc.reason, fe.StatusCode, fe.Reason)
	}
	return nil
}

func runSelfCheckCase(tc selfCheckCase) error {
	page, err := fixtures.ReadFile(tc.fixture)
	if err != nil {
		return err
	}

	quote, err := extractAndMatch(string(page), Matcher{})
	if got := KindOf(err); got != tc.want {
		return fmt.Errorf("want %s, got %s (%v)", tc.want, got, err)
	}
	if tc.want == KindUnknown && !quote.Equal(tc.quote) {
		return fmt.Errorf("want quote %+v, got %+v", tc.quote.Map(), quote.Map())
	}
	return nil
}

func extractAndMatch(page string, m Matcher) (PriceQuote, error) {
	fragments, err := Extract(page)
	if err != nil {
		return PriceQuote{}, err
	}
	return m.Match(fragments)
}
