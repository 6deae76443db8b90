package svgpdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Converter renders SVG content to PDF through headless Chrome.
//
// A Converter manages a browser instance that is reused across multiple
// conversions. It is safe for concurrent use.
//
// Call [Converter.Close] when the Converter is no longer needed to release
// browser resources.
type Converter struct {
	cfg           converterConfig
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewConverter creates a Converter with the given options.
//
// It starts a headless browser in the background. The caller must call
// [Converter.Close] when finished.
func NewConverter(opts ...Option) (*Converter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.chromePath == "" && cfg.autoDownload && findChrome() == "" {
		path, err := resolveBrowser()
		if err != nil {
			return nil, err
		}
		cfg.chromePath = path
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-translate", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("headless", cfg.headless),
	)
	if cfg.chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(cfg.chromePath))
	}
	if cfg.noSandbox {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so errors surface at creation time.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("svgpdf: starting browser: %w", err)
	}

	return &Converter{
		cfg:           cfg,
		allocCtx:      allocCtx,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Close releases all resources held by the Converter, including the
// browser process. Close is idempotent.
func (c *Converter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.browserCancel()
	c.allocCancel()
	return nil
}

// ConvertSVG renders SVG markup to a PDF document. The page is sized to
// the SVG's declared pixel dimensions plus the padding margin; SVGs
// without explicit dimensions render at 800×600.
func (c *Converter) ConvertSVG(ctx context.Context, svg string) (*Result, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	f, err := os.CreateTemp("", "svgpdf-*.html")
	if err != nil {
		return nil, fmt.Errorf("svgpdf: creating temp file: %w", err)
	}
	name := f.Name()
	defer os.Remove(name)

	if _, err := f.WriteString(wrapHTML(svg)); err != nil {
		f.Close()
		return nil, fmt.Errorf("svgpdf: writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("svgpdf: closing temp file: %w", err)
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, fmt.Errorf("svgpdf: resolving path: %w", err)
	}
	return c.convert(ctx, "file://"+abs, ParseDimensions(svg))
}

// ConvertFile renders a local SVG file to a PDF document.
func (c *Converter) ConvertFile(ctx context.Context, path string) (*Result, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if !strings.EqualFold(filepath.Ext(path), ".svg") {
		return nil, fmt.Errorf("svgpdf: not an SVG file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("svgpdf: %w", err)
	}
	return c.ConvertSVG(ctx, string(data))
}

// convert navigates to targetURL and prints it to PDF with a paper size
// derived from the SVG surface dimensions.
func (c *Converter) convert(ctx context.Context, targetURL string, dims Dimensions) (*Result, error) {
	if c.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.timeout)
		defer cancel()
	}

	tabCtx, tabCancel := chromedp.NewContext(c.browserCtx)
	defer tabCancel()

	surfaceW, surfaceH := dims.Surface()

	var buf []byte
	if err := chromedp.Run(tabCtx,
		chromedp.Navigate(targetURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			params := page.PrintToPDF().
				WithPaperWidth(pxToInches(surfaceW)).
				WithPaperHeight(pxToInches(surfaceH)).
				WithMarginTop(0).
				WithMarginRight(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithScale(1.0).
				WithPrintBackground(true)

			var err error
			buf, _, err = params.Do(ctx)
			return err
		}),
	); err != nil {
		return nil, fmt.Errorf("svgpdf: conversion failed: %w", err)
	}

	return &Result{data: buf}, nil
}

func (c *Converter) checkClosed() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	return nil
}

// --- Package-level convenience functions ---

// ConvertSVG renders SVG markup to PDF using a temporary [Converter].
// This is convenient for one-off conversions. For repeated use, create a
// [Converter] with [NewConverter] to reuse the browser instance.
func ConvertSVG(ctx context.Context, svg string, opts ...Option) (*Result, error) {
	conv, err := NewConverter(opts...)
	if err != nil {
		return nil, err
	}
	defer conv.Close()
	return conv.ConvertSVG(ctx, svg)
}

// ConvertFile renders a local SVG file to PDF using a temporary [Converter].
func ConvertFile(ctx context.Context, path string, opts ...Option) (*Result, error) {
	conv, err := NewConverter(opts...)
	if err != nil {
		return nil, err
	}
	defer conv.Close()
	return conv.ConvertFile(ctx, path)
}
