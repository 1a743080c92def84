package forecast

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// FetchPage downloads the forecast page for symbol with a single GET to
// baseURL+symbol. Options override the client's settings for this call only.
func (c *Client) FetchPage(ctx context.Context, symbol string, opts ...ClientOption) (string, error) {
	if symbol == "" {
		return "", &Error{Kind: KindInvalidSymbol}
	}

	var override = &Client{
		baseURL:    c.baseURL,
		httpClient: c.httpClient,
		header:     c.header.Clone(),
	}
	for _, opt := range opts {
		opt(override)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, override.baseURL+symbol, http.NoBody)
	if err != nil {
		return "", &Error{Kind: KindNetwork, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header = override.header

	res, err := override.httpClient.Do(req)
	if err != nil {
		return "", &Error{Kind: KindNetwork, Err: fmt.Errorf("performing request: %w", err)}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", &Error{Kind: KindNetwork, StatusCode: res.StatusCode, Reason: reasonPhrase(res)}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", &Error{Kind: KindNetwork, Err: fmt.Errorf("reading body: %w", err)}
	}
	return string(body), nil
}

// reasonPhrase extracts "Not Found" from a "404 Not Found" status line.
func reasonPhrase(res *http.Response) string {
	if reason, ok := strings.CutPrefix(res.Status, strconv.Itoa(res.StatusCode)); ok {
		if reason = strings.TrimSpace(reason); reason != "" {
			return reason
		}
	}
	return http.StatusText(res.StatusCode)
}
