package universe

import (
	"errors"
	"math/rand"
	"testing"
)

func TestStripes(t *testing.T) {
	u := Stripes(7, 1)
	//i%2==0 and i%7==0 overlap at 0
	assertCells(t, u, map[[2]int]bool{
		{0, 0}: true, {0, 2}: true, {0, 4}: true, {0, 6}: true,
	})
}

func TestRandIsSeededAndRoughlyFair(t *testing.T) {
	rng = rand.New(rand.NewSource(1))
	first := Rand(80, 80)
	rng = rand.New(rand.NewSource(1))
	second := Rand(80, 80)

	for i := range first.cells {
		if first.cells[i] != second.cells[i] {
			t.Fatal("the same seed must produce the same universe")
		}
	}

	//an unbiased coin flip over 6400 cells stays well inside 40..60%
	live := first.LiveCells()
	if live < 2560 || live > 3840 {
		t.Fatalf("%d live cells of 6400 is not a fair coin", live)
	}
}

func TestGetShapeOutOfRange(t *testing.T) {
	for _, i := range []int{ShapesN, ShapesN + 1, 99, -1} {
		if _, err := GetShape(DefaultSize, i); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("shape %d: expected ErrOutOfRange, got %v", i, err)
		}
	}
}

func TestGetShapeFigures(t *testing.T) {
	cases := []struct {
		idx  int
		live int
	}{
		{0, 5},  //featherweight spaceship
		{1, 28}, //copperhead
		{2, 36}, //gosper glider gun
	}
	for _, c := range cases {
		u, err := GetShape(DefaultSize, c.idx)
		if err != nil {
			t.Fatalf("shape %d: unexpected error: %v", c.idx, err)
		}
		if u.Width() != DefaultSize || u.Height() != DefaultSize {
			t.Fatalf("shape %d: expected a %dx%d universe, got %dx%d",
				c.idx, DefaultSize, DefaultSize, u.Width(), u.Height())
		}
		if got := u.LiveCells(); got != c.live {
			t.Fatalf("shape %d: expected %d live cells, got %d", c.idx, c.live, got)
		}
	}
}

func TestGetShapeTooBigPropagates(t *testing.T) {
	//the copperhead is 12 cells wide
	if _, err := GetShape(8, 1); !errors.Is(err, ErrTooBig) {
		t.Fatalf("expected ErrTooBig, got %v", err)
	}
}

func TestGetShapeGeneratorsIgnoreSize(t *testing.T) {
	for _, i := range []int{3, 4} {
		u, err := GetShape(2, i)
		if err != nil {
			t.Fatalf("generator shape %d must never fail on size, got %v", i, err)
		}
		if u.Width() != 2 || u.Height() != 2 {
			t.Fatalf("generator shape %d: expected 2x2, got %dx%d", i, u.Width(), u.Height())
		}
	}
}

func TestShapeName(t *testing.T) {
	if ShapeName(2) != "gosper glider gun" {
		t.Fatalf("unexpected name: %v", ShapeName(2))
	}
	if ShapeName(ShapesN) != "unknown" {
		t.Fatal("an out-of-range index has no name")
	}
}

func TestFigureLinesAreRectangular(t *testing.T) {
	for _, figur := range [][]string{featherweightSpaceship, copperhead, gosperGliderGun} {
		for i, line := range figur {
			if len(line) != len(figur[0]) {
				t.Fatalf("line %d has length %d, first line has %d", i, len(line), len(figur[0]))
			}
		}
	}
}
