package svgpdf

import (
	"regexp"
	"strconv"
	"strings"
)

// Default dimensions used when an SVG does not declare explicit
// pixel dimensions.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// padding is the whitespace margin, in pixels, added on each side of the
// SVG when sizing the rendering surface.
const padding = 20

var (
	widthRe  = regexp.MustCompile(`width="(\d+)(?:px)?"`)
	heightRe = regexp.MustCompile(`height="(\d+)(?:px)?"`)
)

// Dimensions holds an SVG's declared size in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// ParseDimensions extracts explicit pixel dimensions from SVG markup.
// Only literal pixel-unit attributes (width="640px" or width="640") are
// recognized; percentages and other units fall back to the defaults.
func ParseDimensions(svg string) Dimensions {
	d := Dimensions{Width: DefaultWidth, Height: DefaultHeight}
	if m := widthRe.FindStringSubmatch(svg); m != nil {
		if w, err := strconv.Atoi(m[1]); err == nil && w > 0 {
			d.Width = w
		}
	}
	if m := heightRe.FindStringSubmatch(svg); m != nil {
		if h, err := strconv.Atoi(m[1]); err == nil && h > 0 {
			d.Height = h
		}
	}
	return d
}

// Surface returns the rendering surface size: the declared dimensions
// plus the fixed padding margin on each side.
func (d Dimensions) Surface() (width, height int) {
	return d.Width + 2*padding, d.Height + 2*padding
}

// pxToInches converts CSS pixels to inches at the standard 96 px/inch.
func pxToInches(px int) float64 {
	return float64(px) / 96
}

// wrapHTML embeds SVG markup in a minimal HTML page: white background,
// padded body, the SVG centered as a block element. Chrome prints this
// page edge to edge, so the body padding is the only margin.
func wrapHTML(svg string) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
  body { margin: 0; padding: ` + strconv.Itoa(padding) + `px; background: white; }
  svg { display: block; margin: 0 auto; }
</style>
</head>
<body>
`)
	b.WriteString(svg)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
