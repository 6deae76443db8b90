// Package svgpdf converts SVG files to PDF and PNG, and extracts plain
// text from PDF files.
//
// # SVG to PDF / PNG
//
// Conversion is backend-based. An ordered candidate list is tried per
// output kind and the first available backend that produces the output
// file wins:
//
//   - PDF: headless Chrome (renders foreignObject text correctly) →
//     in-process rasterization embedded in a single-page PDF (a bitmap,
//     not vector art: text and edges are fixed at the raster DPI) →
//     the external rsvg-convert binary
//   - PNG: in-process rasterization at a requested DPI →
//     the external rsvg-convert binary
//
// The common case is a single call:
//
//	out, err := svgpdf.Convert(ctx, svgpdf.Request{
//	    SourcePath: "figure.svg",
//	    Kind:       svgpdf.KindPDF,
//	}, "figure.pdf")
//
// Individual backend failures are reported through [Chain.Warnf] and the
// next candidate is tried; [ErrNoBackend] is returned only when the whole
// list is exhausted.
//
// For browser-only conversion create a [Converter], which owns a headless
// Chrome process reused across conversions:
//
//	c, err := svgpdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	res, err := c.ConvertFile(ctx, "figure.svg")
//	res, err  = c.ConvertSVG(ctx, svgMarkup)
//
// A [Result] gives access to the generated PDF bytes:
//
//	res.Bytes()
//	res.WriteTo(w)
//	res.WriteToFile("figure.pdf", 0o644)
//
// Chrome or Chromium must be available in PATH, or use [WithAutoDownload]:
//
//	c, err := svgpdf.NewConverter(svgpdf.WithAutoDownload())
//
// The rendering surface is sized from the SVG's declared pixel dimensions
// plus a fixed padding margin; SVGs without explicit dimensions render at
// 800×600.
//
// # PDF to text
//
// Text extraction reads a PDF from disk and returns its pages:
//
//	pages, err := svgpdf.ExtractPages("document.pdf")
//	text, err  := svgpdf.ExtractFile("document.pdf") // all pages joined
package svgpdf
