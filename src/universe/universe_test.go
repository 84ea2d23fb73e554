package universe

import "testing"

//assertCells sweeps the whole universe and checks that exactly the cells
//listed in alive are Alive
func assertCells(t *testing.T, u *Universe, alive map[[2]int]bool) {
	t.Helper()
	for row := 0; row < u.Height(); row++ {
		for col := 0; col < u.Width(); col++ {
			got := u.cells[u.getIndex(row, col)] == Alive
			_, want := alive[[2]int{row, col}]
			if got != want {
				t.Fatalf("cell (%d;%d) alive=%v, expected %v", row, col, got, want)
			}
		}
	}
}

func TestTickAllDeadStaysDead(t *testing.T) {
	u := New(5, 5)
	u.Tick()
	assertCells(t, u, nil)
}

func TestTickLoneCellDies(t *testing.T) {
	u := New(5, 5)
	u.ToggleCell(2, 2)
	u.Tick()
	assertCells(t, u, nil)
}

func TestTickBlockIsStillLife(t *testing.T) {
	u := New(6, 6)
	block := map[[2]int]bool{
		{2, 2}: true, {2, 3}: true,
		{3, 2}: true, {3, 3}: true,
	}
	for c := range block {
		u.ToggleCell(c[0], c[1])
	}

	u.Tick()
	assertCells(t, u, block)
}

func TestTickBlinkerOscillates(t *testing.T) {
	u := New(5, 5)
	u.ToggleCell(1, 2)
	u.ToggleCell(2, 2)
	u.ToggleCell(3, 2)

	u.Tick()
	assertCells(t, u, map[[2]int]bool{
		{2, 1}: true, {2, 2}: true, {2, 3}: true,
	})

	u.Tick()
	assertCells(t, u, map[[2]int]bool{
		{1, 2}: true, {2, 2}: true, {3, 2}: true,
	})
}

func TestToroidalWraparound(t *testing.T) {
	u := New(4, 4)
	u.ToggleCell(3, 3)
	if n := u.liveNeighbourCount(0, 0); n != 1 {
		t.Fatalf("(3;3) should be a diagonal neighbour of (0;0), counted %d", n)
	}

	//a blinker across the top edge wraps to the bottom row
	u = New(5, 5)
	u.ToggleCell(4, 2)
	u.ToggleCell(0, 2)
	u.ToggleCell(1, 2)
	u.Tick()
	assertCells(t, u, map[[2]int]bool{
		{0, 1}: true, {0, 2}: true, {0, 3}: true,
	})
}

func TestToggleCell(t *testing.T) {
	u := New(3, 3)
	u.ToggleCell(1, 2)
	if u.cells[u.getIndex(1, 2)] != Alive {
		t.Fatal("toggled cell should be alive")
	}
	u.ToggleCell(1, 2)
	if u.cells[u.getIndex(1, 2)] != Dead {
		t.Fatal("toggling twice should restore a dead cell")
	}
}

func TestTickParallelMatchesTick(t *testing.T) {
	serial := Stripes(33, 17)
	parallel := Stripes(33, 17)

	for i := 0; i < 8; i++ {
		serial.Tick()
		parallel.TickParallel()
		for j := range serial.cells {
			if serial.cells[j] != parallel.cells[j] {
				t.Fatalf("generation %d: cell %d differs between serial and parallel tick", i+1, j)
			}
		}
	}
}

func TestLiveCells(t *testing.T) {
	u := New(4, 4)
	if u.LiveCells() != 0 {
		t.Fatal("a new universe should be all dead")
	}
	u.ToggleCell(0, 0)
	u.ToggleCell(3, 1)
	if got := u.LiveCells(); got != 2 {
		t.Fatalf("expected 2 live cells, got %d", got)
	}
}
