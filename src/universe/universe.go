package universe

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

//Cell is the state of a single grid slot: Dead or Alive
type Cell bool

const (
	Dead  Cell = false
	Alive Cell = true
)

//Toggle flips Dead<->Alive
func (c *Cell) Toggle() {
	*c = !*c
}

//Universe is the field where the game plays
//the cells are stored as a flat row-major sequence, len(cells) == width*height
type Universe struct {
	width  int
	height int
	cells  []Cell
}

//New creates an all-dead universe with the given dimensions
func New(width, height int) *Universe {
	return &Universe{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (u *Universe) Width() int {
	return u.width
}

func (u *Universe) Height() int {
	return u.height
}

//Cells returns the cell sequence in row-major order
//the slice is the universe's own storage, viewers must treat it as read-only
func (u *Universe) Cells() []Cell {
	return u.cells
}

//getIndex converts (row;col) to the flat index
//coordinates must be in range, an out-of-range coordinate is a programming error
func (u *Universe) getIndex(row, col int) int {
	return row*u.width + col
}

//ToggleCell flips the cell at (row;col) in place
func (u *Universe) ToggleCell(row, col int) {
	u.cells[u.getIndex(row, col)].Toggle()
}

//LiveCells counts the alive cells
func (u *Universe) LiveCells() int {
	live := 0
	for _, c := range u.cells {
		if c == Alive {
			live++
		}
	}
	return live
}

//liveNeighbourCount counts the alive cells among the 8 neighbours of (row;col)
//row and column wrap independently via modulo, the field is a torus
func (u *Universe) liveNeighbourCount(row, col int) int {
	sum := 0
	for _, deltaRow := range [3]int{u.height - 1, 0, 1} {
		for _, deltaCol := range [3]int{u.width - 1, 0, 1} {
			if deltaRow == 0 && deltaCol == 0 {
				continue
			}
			neighbourRow := (row + deltaRow) % u.height
			neighbourCol := (col + deltaCol) % u.width
			if u.cells[u.getIndex(neighbourRow, neighbourCol)] == Alive {
				sum++
			}
		}
	}
	return sum
}

//nextState applies the life rule to one cell of the current generation
func (u *Universe) nextState(row, col int) Cell {
	cell := u.cells[u.getIndex(row, col)]
	n := u.liveNeighbourCount(row, col)
	switch {
	case cell == Alive && n < 2:
		//underpopulation
		return Dead
	case cell == Alive && (n == 2 || n == 3):
		return Alive
	case cell == Alive && n > 3:
		//overpopulation
		return Dead
	case cell == Dead && n == 3:
		//reproduction
		return Alive
	}
	return cell
}

//Tick advances the universe by one generation
//the next generation is computed into a scratch buffer from the frozen
//current one and committed at once, a cell never sees a partial update
func (u *Universe) Tick() {
	next := make([]Cell, len(u.cells))
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			next[u.getIndex(row, col)] = u.nextState(row, col)
		}
	}
	u.cells = next
}

//TickParallel is Tick with the rows sharded over the CPUs
//the current generation stays read-only during the pass and the scratch
//buffer is committed only after every worker has finished
func (u *Universe) TickParallel() {
	next := make([]Cell, len(u.cells))

	var eg errgroup.Group
	workers := runtime.NumCPU()
	rowsPerWorker := (u.height + workers - 1) / workers

	for i := 0; i < workers; i++ {
		startRow := i * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > u.height {
			endRow = u.height
		}
		if startRow >= u.height {
			break
		}
		eg.Go(func() error {
			for row := startRow; row < endRow; row++ {
				for col := 0; col < u.width; col++ {
					next[u.getIndex(row, col)] = u.nextState(row, col)
				}
			}
			return nil
		})
	}
	//the workers never return an error
	_ = eg.Wait()

	u.cells = next
}

//String renders the universe framed with a box-drawing border,
//alive cells as a filled glyph and dead cells as blanks
//the text format is cosmetic, not a compatibility contract
func (u *Universe) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "╭%s╮\n", strings.Repeat("─", u.width*2))
	for row := 0; row < u.height; row++ {
		b.WriteString("│")
		for col := 0; col < u.width; col++ {
			if u.cells[u.getIndex(row, col)] == Alive {
				b.WriteString("◼ ")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("│\n")
	}
	fmt.Fprintf(&b, "╰%s╯\n", strings.Repeat("─", u.width*2))
	return b.String()
}
