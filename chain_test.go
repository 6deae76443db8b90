package svgpdf_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	svgpdf "github.com/porticus-lab/go-svg-pdf"
)

// fakeBackend is a scriptable Backend for chain tests.
type fakeBackend struct {
	name      string
	available bool
	fail      error
	// skipWrite makes Render claim success without producing a file.
	skipWrite bool
	calls     int
}

func (b *fakeBackend) Name() string { return b.name }

func (b *fakeBackend) Available() bool { return b.available }

func (b *fakeBackend) Render(_ context.Context, _ svgpdf.Request, outPath string) error {
	b.calls++
	if b.fail != nil {
		return b.fail
	}
	if b.skipWrite {
		return nil
	}
	return os.WriteFile(outPath, []byte("%PDF-1.4 fake"), 0o644)
}

func testRequest() svgpdf.Request {
	return svgpdf.Request{SourcePath: "figure.svg", Kind: svgpdf.KindPDF, DPI: 300}
}

func TestChain_FirstBackendWins(t *testing.T) {
	out := filepath.Join(t.TempDir(), "figure.pdf")
	first := &fakeBackend{name: "first", available: true}
	second := &fakeBackend{name: "second", available: true}

	chain := &svgpdf.Chain{Backends: []svgpdf.Backend{first, second}}
	outcome, err := chain.Convert(context.Background(), testRequest(), out)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if outcome.Backend != "first" {
		t.Errorf("winning backend = %q, want %q", outcome.Backend, "first")
	}
	if second.calls != 0 {
		t.Error("second backend was tried after the first succeeded")
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestChain_FallsBackAfterFailure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "figure.pdf")
	first := &fakeBackend{name: "first", available: true, fail: errors.New("render crashed")}
	second := &fakeBackend{name: "second", available: true}

	var warnings []string
	chain := &svgpdf.Chain{
		Backends: []svgpdf.Backend{first, second},
		Warnf: func(format string, args ...any) {
			warnings = append(warnings, fmt.Sprintf(format, args...))
		},
	}

	outcome, err := chain.Convert(context.Background(), testRequest(), out)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if outcome.Backend != "second" {
		t.Errorf("winning backend = %q, want %q", outcome.Backend, "second")
	}
	if outcome.OutputPath != out {
		t.Errorf("outcome path = %q, want %q", outcome.OutputPath, out)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want exactly one", warnings)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestChain_SkipsUnavailableSilently(t *testing.T) {
	out := filepath.Join(t.TempDir(), "figure.pdf")
	missing := &fakeBackend{name: "missing", available: false}
	working := &fakeBackend{name: "working", available: true}

	var warnings int
	chain := &svgpdf.Chain{
		Backends: []svgpdf.Backend{missing, working},
		Warnf:    func(string, ...any) { warnings++ },
	}

	outcome, err := chain.Convert(context.Background(), testRequest(), out)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if missing.calls != 0 {
		t.Error("unavailable backend was invoked")
	}
	if warnings != 0 {
		t.Errorf("unavailable backend produced %d warnings, want none", warnings)
	}
	if outcome.Backend != "working" {
		t.Errorf("winning backend = %q, want %q", outcome.Backend, "working")
	}
}

func TestChain_OutputNotProduced(t *testing.T) {
	out := filepath.Join(t.TempDir(), "figure.pdf")
	liar := &fakeBackend{name: "liar", available: true, skipWrite: true}
	honest := &fakeBackend{name: "honest", available: true}

	chain := &svgpdf.Chain{Backends: []svgpdf.Backend{liar, honest}}
	outcome, err := chain.Convert(context.Background(), testRequest(), out)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if outcome.Backend != "honest" {
		t.Errorf("winning backend = %q, want %q", outcome.Backend, "honest")
	}
}

func TestChain_AllFail(t *testing.T) {
	out := filepath.Join(t.TempDir(), "figure.pdf")
	chain := &svgpdf.Chain{Backends: []svgpdf.Backend{
		&fakeBackend{name: "a", available: true, fail: errors.New("boom")},
		&fakeBackend{name: "b", available: true, fail: errors.New("boom")},
	}}

	_, err := chain.Convert(context.Background(), testRequest(), out)
	if !errors.Is(err, svgpdf.ErrNoBackend) {
		t.Fatalf("Convert error = %v, want ErrNoBackend", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("output file left behind after total failure")
	}
}

func TestChain_RemovesPartialOutput(t *testing.T) {
	// A backend writes the file but a later verification-failing state
	// must not leave the partial file behind once the chain gives up.
	out := filepath.Join(t.TempDir(), "figure.pdf")
	if err := os.WriteFile(out, []byte("partial"), 0o644); err != nil {
		t.Fatal(err)
	}

	chain := &svgpdf.Chain{Backends: []svgpdf.Backend{
		&fakeBackend{name: "a", available: true, fail: errors.New("boom")},
	}}
	if _, err := chain.Convert(context.Background(), testRequest(), out); !errors.Is(err, svgpdf.ErrNoBackend) {
		t.Fatalf("Convert error = %v, want ErrNoBackend", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("partial output not removed")
	}
}

func TestChain_NoBackendsAvailable(t *testing.T) {
	chain := &svgpdf.Chain{Backends: []svgpdf.Backend{
		&fakeBackend{name: "a", available: false},
	}}
	_, err := chain.Convert(context.Background(), testRequest(), filepath.Join(t.TempDir(), "out.pdf"))
	if !errors.Is(err, svgpdf.ErrNoBackend) {
		t.Fatalf("Convert error = %v, want ErrNoBackend", err)
	}
}
