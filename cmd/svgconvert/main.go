// svgconvert converts an SVG file to PDF and a high-resolution PNG,
// trying each available rendering backend in order of output fidelity.
//
// Usage:
//
//	svgconvert [options] <file.svg>
//
// The PDF is required: when no backend produces it the exit status is 1.
// The PNG is best effort.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	svgpdf "github.com/porticus-lab/go-svg-pdf"
)

func main() {
	var (
		dpi       = flag.Int("dpi", 300, "PNG resolution in DPI")
		noSandbox = flag.Bool("no-sandbox", false, "disable the Chrome sandbox (needed when running as root)")
		download  = flag.Bool("download-browser", false, "download Chromium when Chrome is not installed")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: svgconvert [options] <file.svg>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	var opts []svgpdf.Option
	if *noSandbox {
		opts = append(opts, svgpdf.WithNoSandbox())
	}
	if *download {
		opts = append(opts, svgpdf.WithAutoDownload())
	}

	if err := run(flag.Arg(0), *dpi, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(src string, dpi int, opts []svgpdf.Option) error {
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("input SVG file not found: %s", src)
	}
	if !strings.EqualFold(filepath.Ext(src), ".svg") {
		return fmt.Errorf("input file must be a .svg file: %s", src)
	}

	pdfPath := replaceExt(src, ".pdf")
	pngPath := replaceExt(src, ".png")

	avail := svgpdf.Detect()
	ctx := context.Background()

	logf := func(format string, args ...any) {
		fmt.Printf(format+"\n", args...)
	}
	warnf := func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
	}

	pdfChain := &svgpdf.Chain{
		Backends: svgpdf.PDFBackends(avail, opts...),
		Logf:     logf,
		Warnf:    warnf,
	}
	req := svgpdf.Request{SourcePath: src, Kind: svgpdf.KindPDF, DPI: dpi}
	out, err := pdfChain.Convert(ctx, req, pdfPath)
	if err != nil {
		return fmt.Errorf("could not convert %s to PDF: %w", src, err)
	}
	fmt.Printf("created %s (%s)\n", out.OutputPath, out.Backend)

	pngChain := &svgpdf.Chain{
		Backends: svgpdf.PNGBackends(avail),
		Logf:     logf,
		Warnf:    warnf,
	}
	req.Kind = svgpdf.KindPNG
	if out, err := pngChain.Convert(ctx, req, pngPath); err != nil {
		fmt.Println("note: PNG conversion skipped; the PDF is sufficient for LaTeX")
	} else {
		fmt.Printf("created %s (%s)\n", out.OutputPath, out.Backend)
	}

	fmt.Printf("\nFor LaTeX, use: \\includegraphics[width=0.88\\columnwidth]{%s}\n", filepath.Base(pdfPath))
	return nil
}

// replaceExt swaps the extension of path for ext.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
