package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshotValidatesCardinality(t *testing.T) {
	cols := []Column{{Key: "name"}, {Key: "iban"}}

	_, err := NewSnapshot(cols, []Row{{Key: "1", Cells: []string{"only one"}}})
	require.Error(t, err)

	snap, err := NewSnapshot(cols, []Row{{Key: "1", Cells: []string{"giro", "DE02"}}})
	require.NoError(t, err)
	assert.Equal(t, 1, snap.NumRows())
	assert.Equal(t, 2, snap.NumCols())
}

func TestSnapshotMutatorsCopyOnWrite(t *testing.T) {
	cols := []Column{{Key: "name", Width: 8}}
	snap, err := NewSnapshot(cols, []Row{
		{Key: "1", Cells: []string{"Alice"}},
		{Key: "2", Cells: []string{"Bob"}},
	})
	require.NoError(t, err)

	edited := snap.SetCell(0, 0, "Alicia")
	assert.Equal(t, "Alice", snap.Cell(0, 0))
	assert.Equal(t, "Alicia", edited.Cell(0, 0))

	shorter := snap.Delete(1)
	assert.Equal(t, 2, snap.NumRows())
	assert.Equal(t, 1, shorter.NumRows())

	longer := snap.Append(Row{Key: "3", Cells: []string{"Charlie"}})
	assert.Equal(t, 2, snap.NumRows())
	assert.Equal(t, []string{"1", "2", "3"}, longer.Keys())

	swapped := snap.ReplaceAt(1, Row{Key: "9", Cells: []string{"Bea"}})
	assert.Equal(t, []string{"1", "2"}, snap.Keys())
	assert.Equal(t, []string{"1", "9"}, swapped.Keys())
}

func TestSnapshotOutOfBoundsIgnored(t *testing.T) {
	snap, err := NewSnapshot([]Column{{Key: "name"}}, []Row{{Key: "1", Cells: []string{"Alice"}}})
	require.NoError(t, err)

	assert.Equal(t, 1, snap.Delete(4).NumRows())
	assert.Equal(t, "Alice", snap.SetCell(4, 0, "x").Cell(0, 0))
	assert.Equal(t, "", snap.Cell(0, 9))
	assert.Equal(t, -1, snap.IndexOf("nope"))
}

func TestAppendPanicsOnRaggedRow(t *testing.T) {
	snap, err := NewSnapshot([]Column{{Key: "name"}}, nil)
	require.NoError(t, err)

	assert.Panics(t, func() {
		snap.Append(Row{Key: "1", Cells: []string{"a", "b"}})
	})
}
