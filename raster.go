package svgpdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/signintech/gopdf"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// rasterBackend renders SVG in-process with oksvg/rasterx. For PNG it
// writes the raster directly; for PDF it embeds the raster as a
// single-page document via gopdf. Always available: both libraries are
// compiled in.
type rasterBackend struct {
	kind Kind
}

func (b *rasterBackend) Name() string { return "rasterize" }

func (b *rasterBackend) Available() bool { return true }

func (b *rasterBackend) Render(ctx context.Context, req Request, outPath string) error {
	if err := ctx.Err(); err != nil {
		return &BackendError{Backend: b.Name(), Op: "render", Err: err}
	}

	img, err := rasterizeFile(req.SourcePath, req.dpi())
	if err != nil {
		return &BackendError{Backend: b.Name(), Op: "rasterize svg", Err: err}
	}

	switch b.kind {
	case KindPNG:
		if err := writePNG(img, outPath); err != nil {
			return &BackendError{Backend: b.Name(), Op: "write png", Err: err}
		}
	default:
		if err := writeImagePDF(img, req.dpi(), outPath); err != nil {
			return &BackendError{Backend: b.Name(), Op: "write pdf", Err: err}
		}
	}
	return nil
}

// rasterizeFile renders an SVG file to an RGBA image scaled for the
// given DPI (the SVG's declared pixel size is taken as 96 DPI).
func rasterizeFile(path string, dpi int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}

	w := int(icon.ViewBox.W)
	h := int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		w, h = DefaultWidth, DefaultHeight
	}

	scale := float64(dpi) / 96
	outW := int(float64(w) * scale)
	outH := int(float64(h) * scale)
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, outW, outH))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	icon.SetTarget(0, 0, float64(outW), float64(outH))
	scanner := rasterx.NewScannerGV(outW, outH, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(outW, outH, scanner), 1)

	return img, nil
}

func writePNG(img *image.RGBA, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeImagePDF embeds img as a single PDF page. The page is sized in
// points so the document keeps the SVG's logical dimensions regardless
// of the raster DPI.
func writeImagePDF(img *image.RGBA, dpi int, outPath string) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding image: %w", err)
	}

	holder, err := gopdf.ImageHolderByBytes(buf.Bytes())
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}

	bounds := img.Bounds()
	pageW := float64(bounds.Dx()) * 72 / float64(dpi)
	pageH := float64(bounds.Dy()) * 72 / float64(dpi)

	doc := &gopdf.GoPdf{}
	doc.Start(gopdf.Config{Unit: gopdf.UnitPT, PageSize: *gopdf.PageSizeA4})
	doc.AddPageWithOption(gopdf.PageOption{PageSize: &gopdf.Rect{W: pageW, H: pageH}})
	if err := doc.ImageByHolder(holder, 0, 0, &gopdf.Rect{W: pageW, H: pageH}); err != nil {
		return fmt.Errorf("placing image: %w", err)
	}
	return doc.WritePdf(outPath)
}
