package renderer

import (
	"strconv"
	"strings"

	"github.com/dshills/fluffy/internal/renderer/core"
)

// glyph is one drawn character of a laid-out line.
type glyph struct {
	r     rune
	col   int // screen column, relative to the line start
	width int
}

// layoutLine expands tabs to tabWidth stops and measures each rune.
// Control characters other than tab are shown as '?'.
func layoutLine(line string, tabWidth int) []glyph {
	glyphs := make([]glyph, 0, len(line))
	col := 0
	for _, r := range line {
		switch {
		case r == '\t':
			n := tabWidth - col%tabWidth
			for i := 0; i < n; i++ {
				glyphs = append(glyphs, glyph{r: ' ', col: col, width: 1})
				col++
			}
		case core.RuneWidth(r) == 0:
			glyphs = append(glyphs, glyph{r: '?', col: col, width: 1})
			col++
		default:
			w := core.RuneWidth(r)
			glyphs = append(glyphs, glyph{r: r, col: col, width: w})
			col += w
		}
	}
	return glyphs
}

// screenColumn returns the screen column of byte offset byteCol in line.
func screenColumn(line string, byteCol, tabWidth int) int {
	if byteCol > len(line) {
		byteCol = len(line)
	}
	prefix := line[:byteCol]
	glyphs := layoutLine(prefix, tabWidth)
	if len(glyphs) == 0 {
		return 0
	}
	last := glyphs[len(glyphs)-1]
	return last.col + last.width
}

// lineNumber formats a 1-based line number right-aligned to width.
func lineNumber(row, width int) string {
	s := strconv.Itoa(row + 1)
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// digits returns the number of decimal digits in n.
func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
