package renderer

// viewport tracks the scroll offsets of the text area.
type viewport struct {
	width, height int
	top, left     int

	marginV, marginH int
}

// reveal scrolls so that (row, col) lies inside the margins, where col
// is a screen column within the line. Margins shrink on small screens.
func (v *viewport) reveal(row, col int) {
	if v.height <= 0 || v.width <= 0 {
		return
	}

	mv := min(v.marginV, (v.height-1)/2)
	switch {
	case row < v.top+mv:
		v.top = max(0, row-mv)
	case row > v.top+v.height-1-mv:
		v.top = row - v.height + 1 + mv
	}

	mh := min(v.marginH, (v.width-1)/2)
	switch {
	case col < v.left+mh:
		v.left = max(0, col-mh)
	case col > v.left+v.width-1-mh:
		v.left = col - v.width + 1 + mh
	}
}

// clampTop keeps the top row within a document of n lines.
func (v *viewport) clampTop(n int) {
	if v.top > n-1 {
		v.top = max(0, n-1)
	}
}
