package sheet

// the header occupies a single line above the first data row
const headerHeight = 1

// Rect locates the selected cell on screen, in character cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Offset is the table's scroll position.
type Offset struct {
	X int
	Y int
}

// Locate computes the on-screen rectangle of the cell under the cursor
// from the column widths in display order and the current scroll
// offset. Rectangles go stale on every cursor move and scroll event, so
// callers always recompute rather than reuse.
func Locate(widths []int, scroll Offset, cur Cursor) Rect {

	x := 0
	for _, width := range widths[:cur.Col] {
		x += width
	}

	return Rect{
		X:      x - scroll.X,
		Y:      headerHeight + cur.Row - scroll.Y,
		Width:  widths[cur.Col],
		Height: 1,
	}
}
