package pdfparser

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// defaultGlyphWidth is used for glyphs whose font size is unknown.
	defaultGlyphWidth = 5.0
	// rowTolerance is the vertical distance under which glyphs share a line.
	rowTolerance = 2.0
)

// NativeExtractor reads PDFs with ledongthuc/pdf and rebuilds the layout
// from glyph coordinates, so column gaps survive as runs of spaces.
type NativeExtractor struct{}

// NewNativeExtractor creates a new NativeExtractor.
func NewNativeExtractor() *NativeExtractor {
	return &NativeExtractor{}
}

// Name implements Named.
func (e *NativeExtractor) Name() string {
	return EngineNative
}

// ExtractPages implements PDFExtractor.
func (e *NativeExtractor) ExtractPages(ctx context.Context, path string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = extractionError(path, e.Name(), fmt.Errorf("pdf reader panicked: %v", r))
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, extractionError(path, e.Name(), err)
	}
	defer f.Close()

	n := r.NumPage()
	if n == 0 {
		return nil, extractionError(path, e.Name(), fmt.Errorf("PDF has no pages"))
	}

	pages = make([]string, 0, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, extractionError(path, e.Name(), err)
		}
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, layoutPage(page.Content().Text))
	}
	return pages, nil
}

type glyph struct {
	x, y, w, size float64
	s             string
}

// layoutPage groups glyphs into lines top to bottom and places each glyph at
// the character column derived from its X coordinate.
func layoutPage(texts []pdf.Text) string {
	glyphs := make([]glyph, 0, len(texts))
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		glyphs = append(glyphs, glyph{x: t.X, y: t.Y, w: t.W, size: t.FontSize, s: t.S})
	}
	if len(glyphs) == 0 {
		return ""
	}

	// PDF Y grows upwards.
	sort.SliceStable(glyphs, func(a, b int) bool {
		if math.Abs(glyphs[a].y-glyphs[b].y) > rowTolerance {
			return glyphs[a].y > glyphs[b].y
		}
		return glyphs[a].x < glyphs[b].x
	})

	var rows [][]glyph
	for _, g := range glyphs {
		last := len(rows) - 1
		if last >= 0 && math.Abs(rows[last][0].y-g.y) <= rowTolerance {
			rows[last] = append(rows[last], g)
			continue
		}
		rows = append(rows, []glyph{g})
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		sort.SliceStable(row, func(a, b int) bool { return row[a].x < row[b].x })
		lines = append(lines, layoutRow(row))
	}
	return strings.Join(lines, "\n")
}

func layoutRow(row []glyph) string {
	var b strings.Builder
	col := 0
	for _, g := range row {
		target := int(math.Round(g.x / glyphWidth(g)))
		if target > col {
			b.WriteString(strings.Repeat(" ", target-col))
			col = target
		} else if col > 0 && g.x-prevEnd(row, g) > glyphWidth(g)/2 {
			b.WriteByte(' ')
			col++
		}
		b.WriteString(g.s)
		col += len([]rune(g.s))
	}
	return strings.TrimRight(b.String(), " ")
}

// prevEnd returns the right edge of the glyph placed before g.
func prevEnd(row []glyph, g glyph) float64 {
	end := 0.0
	for _, other := range row {
		if other.x >= g.x {
			break
		}
		end = other.x + other.w
	}
	return end
}

func glyphWidth(g glyph) float64 {
	if g.size <= 0 {
		return defaultGlyphWidth
	}
	return g.size / 2
}
