package svgpdf

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="100px" height="50px" viewBox="0 0 100 50">
  <rect x="10" y="10" width="80" height="30" fill="#3b82f6"/>
</svg>`

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func writeTestSVG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "figure.svg")
	if err := os.WriteFile(path, []byte(testSVG), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRasterizeFile_Scaling(t *testing.T) {
	src := writeTestSVG(t)

	tests := []struct {
		dpi          int
		wantW, wantH int
	}{
		{96, 100, 50},
		{192, 200, 100},
		{300, 312, 156},
	}
	for _, tt := range tests {
		img, err := rasterizeFile(src, tt.dpi)
		if err != nil {
			t.Fatalf("rasterizeFile(dpi=%d): %v", tt.dpi, err)
		}
		b := img.Bounds()
		if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
			t.Errorf("dpi %d: raster = %dx%d, want %dx%d",
				tt.dpi, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
		}
	}
}

func TestRasterizeFile_BadInput(t *testing.T) {
	if _, err := rasterizeFile(filepath.Join(t.TempDir(), "missing.svg"), 96); err == nil {
		t.Fatal("rasterizeFile on a missing file succeeded")
	}
}

func TestRasterBackend_PNG(t *testing.T) {
	src := writeTestSVG(t)
	out := filepath.Join(t.TempDir(), "figure.png")

	b := &rasterBackend{kind: KindPNG}
	req := Request{SourcePath: src, Kind: KindPNG, DPI: 96}
	if err := b.Render(context.Background(), req, out); err != nil {
		t.Fatalf("Render: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("output is not a PNG file")
	}
}

func TestRasterBackend_PDF(t *testing.T) {
	src := writeTestSVG(t)
	out := filepath.Join(t.TempDir(), "figure.pdf")

	b := &rasterBackend{kind: KindPDF}
	req := Request{SourcePath: src, Kind: KindPDF, DPI: 300}
	if err := b.Render(context.Background(), req, out); err != nil {
		t.Fatalf("Render: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF file")
	}
}

func TestRasterBackend_AlwaysAvailable(t *testing.T) {
	if !(&rasterBackend{kind: KindPNG}).Available() {
		t.Error("rasterize backend reported unavailable")
	}
}

func TestRasterBackend_CancelledContext(t *testing.T) {
	src := writeTestSVG(t)
	out := filepath.Join(t.TempDir(), "figure.png")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &rasterBackend{kind: KindPNG}
	if err := b.Render(ctx, Request{SourcePath: src}, out); err == nil {
		t.Fatal("Render with cancelled context succeeded")
	}
}
