package grid

import (
	"iter"
	"math"

	"github.com/matzehuels/genogrid/pkg/errors"
)

// Cell is one item's square. X and Y are the top-left corner.
type Cell struct {
	Index int
	X, Y  int
	Side  int
}

// Grid is the layout of Count cells on a Width × Height canvas.
type Grid struct {
	Width, Height int
	Count         int
	Side          int
}

// New computes the cell size for count items on a width × height canvas.
//
// It fails with EMPTY_INPUT when count is zero, INVALID_INPUT for a canvas
// without area, and OUT_OF_RANGE when the items outnumber the canvas units
// (the cell side would round down to zero).
func New(width, height, count int) (Grid, error) {
	if count <= 0 {
		return Grid{}, errors.New(errors.ErrCodeEmptyInput, "no items to lay out")
	}
	if err := errors.ValidateCanvas(width, height); err != nil {
		return Grid{}, err
	}
	side := int(math.Floor(math.Sqrt(float64(width) * float64(height) / float64(count))))
	if side == 0 {
		return Grid{}, errors.New(errors.ErrCodeOutOfRange,
			"%d items do not fit on a %dx%d canvas", count, width, height)
	}
	return Grid{Width: width, Height: height, Count: count, Side: side}, nil
}

// Cells yields the cells in raster order.
func (g Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		x, y := 0, 0
		for i := 0; i < g.Count; i++ {
			if !yield(Cell{Index: i, X: x, Y: y, Side: g.Side}) {
				return
			}
			if x+g.Side < g.Width {
				x += g.Side
			} else {
				x = 0
				y += g.Side
			}
		}
	}
}

// Positions materializes Cells.
func (g Grid) Positions() []Cell {
	out := make([]Cell, 0, g.Count)
	for c := range g.Cells() {
		out = append(out, c)
	}
	return out
}

// Columns returns the number of cells per full row.
func (g Grid) Columns() int {
	if g.Side == 0 {
		return 0
	}
	// A cell starts at every multiple of Side below Width.
	return (g.Width + g.Side - 1) / g.Side
}

// Rows returns the number of rows the cells occupy.
func (g Grid) Rows() int {
	cols := g.Columns()
	if cols == 0 {
		return 0
	}
	return (g.Count + cols - 1) / cols
}

// Extent returns the bounding box of all cells. The width may exceed the
// canvas when the last column overhangs, the height when rows overflow.
func (g Grid) Extent() (width, height int) {
	cols := g.Columns()
	if g.Count < cols {
		cols = g.Count
	}
	return cols * g.Side, g.Rows() * g.Side
}
