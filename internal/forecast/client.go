package forecast

import (
	"net/http"
)

// DefaultBaseURL is the forecast page endpoint. Symbols are appended verbatim.
const DefaultBaseURL = "https://money.cnn.com/quote/forecast/forecast.html?symb="

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=forecast_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches forecast pages.
type Client struct {
	// baseURL is the prefix the symbol is appended to.
	baseURL string
	// httpClient is the HTTP httpClient.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
}

// ClientOption is a configuration option for the forecast client.
type ClientOption func(*Client)

// WithBaseURL sets the URL prefix the symbol is appended to.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for page requests.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) ClientOption {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// NewClient creates a new forecast page client.
func NewClient(options ...ClientOption) *Client {
	var client = &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
	}
	for _, option := range options {
		option(client)
	}
	return client
}
