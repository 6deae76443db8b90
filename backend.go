package svgpdf

import (
	"context"
	"os/exec"
)

// Kind selects the conversion output format.
type Kind int

const (
	// KindPDF is the required output of a conversion run.
	KindPDF Kind = iota
	// KindPNG is the optional raster output.
	KindPNG
)

// String returns "pdf" or "png".
func (k Kind) String() string {
	if k == KindPNG {
		return "png"
	}
	return "pdf"
}

// Request describes a single conversion. It is immutable once created.
type Request struct {
	// SourcePath is the input SVG file.
	SourcePath string
	// Kind is the requested output format.
	Kind Kind
	// DPI is the raster resolution for PNG output. Zero means 300.
	DPI int
}

// dpi returns the effective resolution.
func (r Request) dpi() int {
	if r.DPI <= 0 {
		return 300
	}
	return r.DPI
}

// Outcome reports which backend produced a conversion output.
type Outcome struct {
	Backend    string
	OutputPath string
}

// Backend performs one conversion step using a specific library or
// external program.
type Backend interface {
	// Name identifies the backend in warnings and outcomes.
	Name() string

	// Available reports whether the backend's dependency can be used in
	// this process. Unavailable backends are skipped without a warning.
	Available() bool

	// Render converts req.SourcePath and writes the result to outPath.
	Render(ctx context.Context, req Request, outPath string) error
}

// Availability holds the result of the one-time startup probe for
// backends whose dependency lives outside the process. It is fixed for
// the lifetime of the process and never mutated.
type Availability struct {
	// Chrome is true when a Chrome/Chromium executable is in PATH.
	Chrome bool
	// RSVG is true when the rsvg-convert binary is in PATH.
	RSVG bool
}

// Detect probes the environment for external backend dependencies.
// In-process backends (oksvg rasterization, gopdf embedding) are always
// available and need no probe.
func Detect() Availability {
	_, rsvgErr := exec.LookPath("rsvg-convert")
	return Availability{
		Chrome: findChrome() != "",
		RSVG:   rsvgErr == nil,
	}
}

// PDFBackends returns the candidate list for PDF output, ordered by text
// rendering fidelity: headless Chrome first (handles foreignObject),
// then in-process rasterization, then rsvg-convert.
//
// The chrome backend stays viable without an installed Chrome when the
// options carry an explicit executable path or enable auto-download;
// [NewConverter] resolves the binary in that case.
func PDFBackends(avail Availability, opts ...Option) []Backend {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	chromeOK := avail.Chrome || cfg.chromePath != "" || cfg.autoDownload

	return []Backend{
		&chromeBackend{avail: chromeOK, opts: opts},
		&rasterBackend{kind: KindPDF},
		&rsvgBackend{kind: KindPDF, avail: avail.RSVG},
	}
}

// PNGBackends returns the candidate list for PNG output.
func PNGBackends(avail Availability) []Backend {
	return []Backend{
		&rasterBackend{kind: KindPNG},
		&rsvgBackend{kind: KindPNG, avail: avail.RSVG},
	}
}

// chromeBackend renders through a short-lived [Converter]. Each Render
// launches and tears down its own browser process.
type chromeBackend struct {
	avail bool
	opts  []Option
}

func (b *chromeBackend) Name() string { return "chrome" }

func (b *chromeBackend) Available() bool { return b.avail }

func (b *chromeBackend) Render(ctx context.Context, req Request, outPath string) error {
	conv, err := NewConverter(b.opts...)
	if err != nil {
		return &BackendError{Backend: b.Name(), Op: "start browser", Err: err}
	}
	defer conv.Close()

	res, err := conv.ConvertFile(ctx, req.SourcePath)
	if err != nil {
		return &BackendError{Backend: b.Name(), Op: "render pdf", Err: err}
	}
	if err := res.WriteToFile(outPath, 0o644); err != nil {
		return &BackendError{Backend: b.Name(), Op: "write output", Err: err}
	}
	return nil
}
