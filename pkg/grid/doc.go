// Package grid lays out equal-area square cells on a fixed canvas.
//
// Given a canvas of width × height units and n items, every cell gets the
// edge length
//
//	side = floor(sqrt(width*height / n))
//
// so the cells never collectively exceed the canvas area. Cells are placed in
// raster order: left to right, wrapping to the next row once the next cell
// would start at or beyond the right edge. The canvas height is a target, not
// a clamp; rounding can push the final row below it.
//
// # Usage
//
//	g, err := grid.New(100, 100, 4)
//	if err != nil {
//	    return err // EMPTY_INPUT, INVALID_INPUT or OUT_OF_RANGE
//	}
//	for c := range g.Cells() {
//	    fmt.Println(c.X, c.Y, c.Side)
//	}
//
// [Grid.Cells] is lazy, so renderers can stream one cell per item without
// materializing the position list.
package grid
