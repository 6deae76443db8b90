package svgpdf_test

import (
	"context"
	"fmt"
	"log"
	"os"

	svgpdf "github.com/porticus-lab/go-svg-pdf"
)

func Example() {
	// Run the full fallback chain: headless Chrome first, then the
	// in-process rasterizer, then rsvg-convert.
	out, err := svgpdf.Convert(context.Background(), svgpdf.Request{
		SourcePath: "figure.svg",
		Kind:       svgpdf.KindPDF,
	}, "figure.pdf")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("converted with %s backend\n", out.Backend)
}

func Example_browserOnly() {
	// Create a converter (reuses the browser across conversions).
	c, err := svgpdf.NewConverter(svgpdf.WithNoSandbox())
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	res, err := c.ConvertFile(context.Background(), "figure.svg")
	if err != nil {
		log.Fatal(err)
	}
	if err := res.WriteToFile("figure.pdf", 0o644); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("generated PDF: %d bytes\n", res.Len())
}

func ExampleChain() {
	// Observe individual backend failures while the chain falls through.
	avail := svgpdf.Detect()
	chain := &svgpdf.Chain{
		Backends: svgpdf.PDFBackends(avail),
		Warnf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		},
	}

	out, err := chain.Convert(context.Background(), svgpdf.Request{
		SourcePath: "figure.svg",
		Kind:       svgpdf.KindPDF,
	}, "figure.pdf")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(out.Backend)
}

func ExampleExtractPages() {
	pages, err := svgpdf.ExtractPages("document.pdf")
	if err != nil {
		log.Fatal(err)
	}

	for i, text := range pages {
		fmt.Printf("page %d: %d characters\n", i+1, len(text))
	}
}
