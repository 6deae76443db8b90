package svgpdf

import (
	"context"
	"os"
)

// Chain tries an ordered list of backends until one produces the output
// file. A backend failure is reported through Warnf and the next
// candidate is tried; the chain fails only when the list is exhausted.
type Chain struct {
	// Backends are tried in order. Unavailable entries are skipped.
	Backends []Backend

	// Logf, when non-nil, receives a progress line before each attempt.
	Logf func(format string, args ...any)

	// Warnf, when non-nil, receives non-fatal backend failures.
	Warnf func(format string, args ...any)
}

// Convert runs the fallback chain for req, writing to outPath.
//
// Success requires both that the backend returned no error and that the
// output file exists afterwards. When every candidate fails, any partial
// output left behind is removed and [ErrNoBackend] is returned.
func (c *Chain) Convert(ctx context.Context, req Request, outPath string) (*Outcome, error) {
	for _, b := range c.Backends {
		if !b.Available() {
			continue
		}
		c.logf("converting %s to %s using %s", req.SourcePath, req.Kind, b.Name())

		if err := b.Render(ctx, req, outPath); err != nil {
			c.warnf("%v", err)
			continue
		}
		if _, err := os.Stat(outPath); err != nil {
			c.warnf("%s: %v", b.Name(), ErrOutputNotProduced)
			continue
		}
		return &Outcome{Backend: b.Name(), OutputPath: outPath}, nil
	}

	os.Remove(outPath)
	return nil, ErrNoBackend
}

func (c *Chain) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}

func (c *Chain) warnf(format string, args ...any) {
	if c.Warnf != nil {
		c.Warnf(format, args...)
	}
}

// Convert runs the default backend chain for req using a one-time
// availability probe. Warnings are discarded; use a [Chain] directly to
// observe individual backend failures.
func Convert(ctx context.Context, req Request, outPath string, opts ...Option) (*Outcome, error) {
	avail := Detect()
	var backends []Backend
	if req.Kind == KindPNG {
		backends = PNGBackends(avail)
	} else {
		backends = PDFBackends(avail, opts...)
	}
	chain := &Chain{Backends: backends}
	return chain.Convert(ctx, req, outPath)
}
