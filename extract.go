package svgpdf

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PageSize holds a page's MediaBox dimensions in points.
type PageSize struct {
	Width  float64
	Height float64
}

// Info describes a PDF document: its page count and per-page sizes.
type Info struct {
	Pages int
	Sizes []PageSize
}

// ReadInfo reads document-level metadata from a PDF file. Pages whose
// MediaBox cannot be resolved report a zero size.
func ReadInfo(path string) (*Info, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("svgpdf: opening %s: %w", path, err)
	}
	defer f.Close()

	info := &Info{Pages: r.NumPage()}
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		var s PageSize
		if !p.V.IsNull() {
			if mb := inheritedAttr(p.V, "MediaBox"); mb.Len() == 4 {
				s.Width = mb.Index(2).Float64() - mb.Index(0).Float64()
				s.Height = mb.Index(3).Float64() - mb.Index(1).Float64()
			}
		}
		info.Sizes = append(info.Sizes, s)
	}
	return info, nil
}

// inheritedAttr resolves a page attribute that may live on an ancestor
// Pages node, such as MediaBox.
func inheritedAttr(v pdf.Value, name string) pdf.Value {
	for !v.IsNull() {
		if r := v.Key(name); !r.IsNull() {
			return r
		}
		v = v.Key("Parent")
	}
	return pdf.Value{}
}

// ExtractFile extracts the plain text of every page in a PDF file,
// joined by newlines.
func ExtractFile(path string) (string, error) {
	pages, err := ExtractPages(path)
	if err != nil {
		return "", err
	}
	return strings.Join(pages, "\n"), nil
}

// ExtractPages extracts plain text from a PDF file, one string per page.
// Pages that cannot be read yield an empty string; only opening the
// document can fail.
func ExtractPages(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("svgpdf: opening %s: %w", path, err)
	}
	defer f.Close()

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, extractPageText(p))
	}
	return pages, nil
}

// extractPageText prefers row-based extraction and falls back to
// grouping positioned glyphs into lines.
func extractPageText(p pdf.Page) string {
	if rows, err := p.GetTextByRow(); err == nil {
		if text := rowsToText(rows); text != "" {
			return text
		}
	}
	return glyphsToText(p.Content().Text)
}

// rowsToText joins the words of each row. Empty strings between words
// mark word boundaries in the underlying reader.
func rowsToText(rows pdf.Rows) string {
	var out strings.Builder
	for _, row := range rows {
		var line strings.Builder
		boundary := false
		for _, word := range row.Content {
			if word.S == "" {
				boundary = true
				continue
			}
			if line.Len() > 0 && boundary && !strings.HasSuffix(line.String(), " ") {
				line.WriteString(" ")
			}
			line.WriteString(word.S)
			boundary = false
		}
		if text := strings.TrimSpace(line.String()); text != "" {
			out.WriteString(text)
			out.WriteString("\n")
		}
	}
	return strings.TrimSpace(out.String())
}

// textLine groups glyphs sharing a baseline.
type textLine struct {
	y      float64
	glyphs []pdf.Text
}

// glyphsToText reconstructs text from positioned glyphs: glyphs are
// grouped into lines by Y proximity, lines ordered top to bottom, and a
// space inserted where the X gap between neighbors exceeds a
// font-size-relative threshold.
func glyphsToText(glyphs []pdf.Text) string {
	var kept []pdf.Text
	for _, g := range glyphs {
		if strings.TrimSpace(g.S) != "" {
			kept = append(kept, g)
		}
	}
	if len(kept) == 0 {
		return ""
	}

	tolerance := 3.0
	if kept[0].FontSize > 0 {
		tolerance = kept[0].FontSize * 0.3
	}

	var lines []textLine
	for _, g := range kept {
		placed := false
		for i := range lines {
			if math.Abs(lines[i].y-g.Y) < tolerance {
				lines[i].glyphs = append(lines[i].glyphs, g)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, textLine{y: g.Y, glyphs: []pdf.Text{g}})
		}
	}

	// PDF Y coordinates grow upward.
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].y > lines[j].y
	})

	var out strings.Builder
	for _, ln := range lines {
		sort.Slice(ln.glyphs, func(i, j int) bool {
			return ln.glyphs[i].X < ln.glyphs[j].X
		})

		var line strings.Builder
		var lastEnd float64
		for i, g := range ln.glyphs {
			if i > 0 {
				threshold := g.FontSize * 0.2
				if threshold < 1.0 {
					threshold = 1.0
				}
				if g.X-lastEnd > threshold {
					line.WriteString(" ")
				}
			}
			line.WriteString(g.S)
			lastEnd = g.X + glyphWidth(g)
		}

		if text := strings.TrimSpace(line.String()); text != "" {
			out.WriteString(text)
			out.WriteString("\n")
		}
	}
	return strings.TrimSpace(out.String())
}

// glyphWidth estimates the rendered width of a glyph run when the
// reader supplies no advance width.
func glyphWidth(g pdf.Text) float64 {
	if g.W > 0 {
		return g.W
	}
	return float64(len([]rune(g.S))) * g.FontSize * 0.55
}
