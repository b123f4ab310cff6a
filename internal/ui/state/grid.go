package state

// Grid tracks the highlighted slot of a rows x columns page grid.
type Grid struct {
	Rows    int
	Columns int
	Slot    int
}

// NewGrid returns a cursor parked on slot 0.
func NewGrid(rows, columns int) *Grid {
	g := &Grid{Columns: columns}
	g.Resize(rows)
	return g
}

// Size returns the number of slots.
func (g *Grid) Size() int {
	if g.Rows <= 0 || g.Columns <= 0 {
		return 0
	}
	return g.Rows * g.Columns
}

// Resize changes the row count and keeps the cursor inside the grid.
func (g *Grid) Resize(rows int) {
	if rows < 0 {
		rows = 0
	}
	g.Rows = rows
	g.clamp()
}

func (g *Grid) clamp() {
	size := g.Size()
	if size == 0 {
		g.Slot = 0
		return
	}
	if g.Slot < 0 {
		g.Slot = 0
	}
	if g.Slot >= size {
		g.Slot = size - 1
	}
}

// Position returns the cursor row and column.
func (g *Grid) Position() (row, col int) {
	if g.Columns <= 0 {
		return 0, 0
	}
	return g.Slot / g.Columns, g.Slot % g.Columns
}

// Move shifts the cursor by whole rows and columns, wrapping around the edges
// of the grid.
func (g *Grid) Move(dRow, dCol int) bool {
	if g.Size() == 0 {
		g.Slot = 0
		return false
	}
	old := g.Slot
	row, col := g.Position()
	row = wrap(row+dRow, g.Rows)
	col = wrap(col+dCol, g.Columns)
	g.Slot = row*g.Columns + col
	return g.Slot != old
}

// MoveHome moves the cursor to the first slot.
func (g *Grid) MoveHome() bool {
	old := g.Slot
	g.Slot = 0
	return old != g.Slot
}

// MoveEnd moves the cursor to the last slot.
func (g *Grid) MoveEnd() bool {
	size := g.Size()
	if size == 0 {
		g.Slot = 0
		return false
	}
	old := g.Slot
	g.Slot = size - 1
	return old != g.Slot
}

// Set moves the cursor to slot when it lies inside the grid.
func (g *Grid) Set(slot int) bool {
	if slot < 0 || slot >= g.Size() {
		return false
	}
	old := g.Slot
	g.Slot = slot
	return old != g.Slot
}

// SlotAt converts a row and column into a slot.
func (g *Grid) SlotAt(row, col int) (int, bool) {
	if row < 0 || col < 0 || row >= g.Rows || col >= g.Columns {
		return 0, false
	}
	return row*g.Columns + col, true
}

func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
