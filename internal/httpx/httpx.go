package httpx

import (
	"net/http"
	"time"
)

// Client is a small wrapper around http.Client with sane defaults.
type Client struct {
	HTTP      *http.Client
	UserAgent string
	Headers   map[string]string
}

// New builds a client on a copy of http.DefaultTransport, so dial and TLS
// limits stay at the transport defaults. A zero timeout leaves the request
// deadline to the caller's context.
func New(timeout time.Duration) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &Client{HTTP: &http.Client{Timeout: timeout, Transport: transport}, UserAgent: "stock-forecast/1.0"}
}

// Do sets the default User-Agent and extra headers unless the request
// already carries them, then sends it.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	for k, v := range c.Headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}
	return c.HTTP.Do(req)
}
