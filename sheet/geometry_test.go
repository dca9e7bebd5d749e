package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocate(t *testing.T) {
	widths := []int{10, 20, 30}

	table := []struct {
		name   string
		scroll Offset
		cur    Cursor
		want   Rect
	}{
		{
			name: "first cell",
			cur:  Cursor{Row: 0, Col: 0},
			want: Rect{X: 0, Y: 1, Width: 10, Height: 1},
		},
		{
			name: "third column sums widths to its left",
			cur:  Cursor{Row: 0, Col: 2},
			want: Rect{X: 30, Y: 1, Width: 30, Height: 1},
		},
		{
			name: "row five sits below the header",
			cur:  Cursor{Row: 5, Col: 0},
			want: Rect{X: 0, Y: 6, Width: 10, Height: 1},
		},
		{
			name:   "scroll offsets shift the rectangle",
			scroll: Offset{X: 12, Y: 3},
			cur:    Cursor{Row: 5, Col: 2},
			want:   Rect{X: 18, Y: 3, Width: 30, Height: 1},
		},
	}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Locate(widths, tc.scroll, tc.cur))
		})
	}
}

func TestCellRectRecomputedAfterMove(t *testing.T) {
	mem := &MemController{
		Cols: []Column{{Key: "a", Width: 10}, {Key: "b", Width: 20}},
		Rows: []Row{
			{Key: "1", Cells: []string{"x", "y"}},
			{Key: "2", Cells: []string{"x", "y"}},
		},
	}
	sht := mount(t, mem)

	rect, ok := sht.CellRect()
	assert.True(t, ok)
	assert.Equal(t, Rect{X: 0, Y: 1, Width: 10, Height: 1}, rect)

	sht, _, err := sht.Handle(Move{Direction: Right})
	assert.NoError(t, err)
	sht, _, err = sht.Handle(Move{Direction: Down})
	assert.NoError(t, err)

	rect, ok = sht.CellRect()
	assert.True(t, ok)
	assert.Equal(t, Rect{X: 10, Y: 2, Width: 20, Height: 1}, rect)

	sht = sht.SetScroll(Offset{X: 4, Y: 1})

	rect, ok = sht.CellRect()
	assert.True(t, ok)
	assert.Equal(t, Rect{X: 6, Y: 1, Width: 20, Height: 1}, rect)
}
