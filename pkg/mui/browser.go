package mui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/go-rod/stealth"

	"github.com/igolaizola/muigen/pkg/ratelimit"
)

// BrowserConfig configures the headless browser used to fetch pages that
// need client-side rendering.
type BrowserConfig struct {
	Wait     time.Duration
	Headless bool
	Binary   string
	Proxy    string
}

// Browser fetches rendered demo pages with headless Chrome.
type Browser struct {
	wait           time.Duration
	headless       bool
	binary         string
	proxy          string
	rateLimit      *ratelimit.Lock
	browserContext context.Context
	browserCancel  context.CancelFunc
	allocCancel    context.CancelFunc
}

// NewBrowser creates a browser. Start must be called before use.
func NewBrowser(cfg *BrowserConfig) *Browser {
	wait := cfg.Wait
	if wait == 0 {
		wait = 1 * time.Second
	}
	return &Browser{
		wait:      wait,
		headless:  cfg.Headless,
		binary:    cfg.Binary,
		proxy:     cfg.Proxy,
		rateLimit: ratelimit.New(wait),
	}
}

// Start launches the browser and installs the stealth script on every new
// document.
func (b *Browser) Start(ctx context.Context) error {
	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", b.headless),
	)
	if b.binary != "" {
		opts = append(opts, chromedp.ExecPath(b.binary))
	}
	if b.proxy != "" {
		opts = append(opts, chromedp.ProxyServer(b.proxy))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	if err := chromedp.Run(browserCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		_, err := page.AddScriptToEvaluateOnNewDocument(stealth.JS).Do(ctx)
		return err
	})); err != nil {
		browserCancel()
		allocCancel()
		return fmt.Errorf("mui: couldn't start browser: %w", err)
	}
	b.browserContext = browserCtx
	b.browserCancel = browserCancel
	b.allocCancel = allocCancel
	return nil
}

// Stop closes the browser.
func (b *Browser) Stop() error {
	if b.browserCancel != nil {
		b.browserCancel()
	}
	if b.allocCancel != nil {
		b.allocCancel()
	}
	return nil
}

// DemoHTML navigates to the demo page of a component and returns the
// rendered document.
func (b *Browser) DemoHTML(parent context.Context, component string) (string, error) {
	// Join parent and browser contexts
	ctx, cancel := context.WithCancel(b.browserContext)
	defer cancel()
	go func() {
		select {
		case <-parent.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	// Rate limit to avoid abusing the website
	unlock := b.rateLimit.Lock(ctx)
	defer unlock()

	url := fmt.Sprintf("%sreact-%s/", defaultHost, strings.ToLower(component))
	if err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return "", fmt.Errorf("mui: couldn't navigate to %s: %w", url, err)
	}

	// Wait for the demo sections to hydrate
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("mui: context cancelled")
	case <-time.After(b.wait):
	}

	var html string
	if err := chromedp.Run(ctx,
		chromedp.OuterHTML("html", &html),
	); err != nil {
		return "", fmt.Errorf("mui: couldn't get html: %w", err)
	}
	return html, nil
}
