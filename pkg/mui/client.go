// Package mui scrapes Material UI documentation pages into component
// definitions: the API page for prop and CSS class tables, the demo page for
// example snippets and their rendered elements.
package mui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/charmbracelet/log"

	"github.com/igolaizola/muigen/pkg/ratelimit"
)

const defaultHost = "https://mui.com/material-ui/"

// Config configures a scrape client. The client's lifecycle is scoped to a
// single scrape invocation.
type Config struct {
	Wait  time.Duration
	Debug bool
	Proxy string
	Host  string
}

// Client fetches documentation pages over plain HTTP with a browser TLS
// fingerprint.
type Client struct {
	client    tls_client.HttpClient
	rateLimit *ratelimit.Lock
	host      string
	debug     bool
}

// New creates a scrape client.
func New(cfg *Config) *Client {
	wait := cfg.Wait
	if wait == 0 {
		wait = 1 * time.Second
	}
	host := cfg.Host
	if host == "" {
		host = defaultHost
	}
	opts := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(30),
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithCookieJar(tls_client.NewCookieJar()),
	}
	if cfg.Proxy != "" {
		opts = append(opts, tls_client.WithProxyUrl(cfg.Proxy))
	}
	client, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), opts...)
	if err != nil {
		// Only reachable with invalid options.
		panic(fmt.Sprintf("mui: couldn't create http client: %v", err))
	}
	return &Client{
		client:    client,
		rateLimit: ratelimit.New(wait),
		host:      host,
		debug:     cfg.Debug,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	url := c.host + strings.TrimPrefix(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("mui: couldn't create request: %w", err)
	}
	req.Header = http.Header{
		"accept":          {"text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"},
		"accept-language": {"en-US,en;q=0.9"},
		"user-agent":      {"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"},
	}

	unlock := c.rateLimit.Lock(ctx)
	defer unlock()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("mui: %w", err)
	}

	if c.debug {
		log.Debug("request", "method", method, "url", url)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mui: couldn't %s %s: %w", method, url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("mui: couldn't read response of %s: %w", url, err)
	}
	if c.debug {
		log.Debug("response", "url", url, "status", resp.StatusCode, "bytes", len(data))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mui: %s returned status %d", url, resp.StatusCode)
	}
	return data, nil
}

// DemoHTML fetches the raw demo page for a component. Pages whose demo
// sections only exist after client-side rendering need the Browser instead.
func (c *Client) DemoHTML(ctx context.Context, component string) (string, error) {
	body, err := c.do(ctx, "GET", fmt.Sprintf("react-%s/", strings.ToLower(component)), nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
