package tui

// GridCellFunc draws one grid cell anchored at (x, y)
type GridCellFunc func(c Canvas, x, y int)

// Grid spreads cols×rows cells evenly over its box, each anchored at the
// center of its slot
type Grid struct {
	cols, rows int
	cells      []GridCellFunc
}

// NewGrid creates an empty grid; negative dimensions are treated as zero
func NewGrid(cols, rows int) *Grid {
	cols, rows = max(cols, 0), max(rows, 0)
	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]GridCellFunc, cols*rows),
	}
}

// Size returns the grid dimensions in cells
func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// Set assigns the draw function of a cell; returns false when out of range
func (g *Grid) Set(col, row int, fn GridCellFunc) bool {
	if uint(col) >= uint(g.cols) || uint(row) >= uint(g.rows) {
		return false
	}
	g.cells[row*g.cols+col] = fn
	return true
}

// anchor returns the screen position of a cell within box
func (g *Grid) anchor(box BBox, col, row int) (x, y int) {
	padX := box.W / g.cols / 2
	padY := box.H / g.rows / 2
	return box.X + col*box.W/g.cols + padX, box.Y + row*box.H/g.rows + padY
}

func (g *Grid) Draw(c Canvas, box BBox) {
	if g.cols == 0 || g.rows == 0 || box.Empty() {
		return
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if fn := g.cells[row*g.cols+col]; fn != nil {
				x, y := g.anchor(box, col, row)
				fn(c, x, y)
			}
		}
	}
}

// CellAt maps a screen position inside box back to the slot that contains it
func (g *Grid) CellAt(box BBox, x, y int) (col, row int, ok bool) {
	if g.cols == 0 || g.rows == 0 || !box.Contains(x, y) {
		return 0, 0, false
	}
	col = min((x-box.X)*g.cols/box.W, g.cols-1)
	row = min((y-box.Y)*g.rows/box.H, g.rows-1)
	return col, row, true
}
