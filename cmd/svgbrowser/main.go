// svgbrowser converts an SVG file to PDF using headless Chrome only.
// Unlike svgconvert it has no fallback backends: Chrome renders embedded
// foreignObject text correctly, and when fidelity matters a silent
// fallback to a lesser renderer is the wrong default.
//
// Usage:
//
//	svgbrowser [options] <file.svg>
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
		noSandbox = flag.Bool("no-sandbox", false, "disable the Chrome sandbox (needed when running as root)")
		download  = flag.Bool("download-browser", false, "download Chromium when Chrome is not installed")
		timeout   = flag.Duration("timeout", 0, "maximum render duration (0 uses the default)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: svgbrowser [options] <file.svg>\n\n")
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
	if *timeout > 0 {
		opts = append(opts, svgpdf.WithTimeout(*timeout))
	}

	if err := run(flag.Arg(0), opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(src string, opts []svgpdf.Option) error {
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("input SVG file not found: %s", src)
	}
	if !strings.EqualFold(filepath.Ext(src), ".svg") {
		return fmt.Errorf("input file must be a .svg file: %s", src)
	}

	pdfPath := strings.TrimSuffix(src, filepath.Ext(src)) + ".pdf"

	fmt.Printf("converting %s to PDF using headless Chrome...\n", filepath.Base(src))

	res, err := svgpdf.ConvertFile(context.Background(), src, opts...)
	if err != nil {
		return err
	}
	if err := res.WriteToFile(pdfPath, 0o644); err != nil {
		return err
	}

	fmt.Printf("created %s (%d bytes)\n", pdfPath, res.Len())
	fmt.Printf("\nFor LaTeX, use: \\includegraphics[width=0.88\\columnwidth]{%s}\n", filepath.Base(pdfPath))
	return nil
}
