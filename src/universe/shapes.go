package universe

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

//ShapesN is the number of selectable starting shapes in the registry
const ShapesN = 5

//figure line data, '#' alive, '_' dead
var (
	featherweightSpaceship = []string{
		"__#",
		"#_#",
		"_##",
	}

	copperhead = []string{
		"_____#_##___",
		"____#______#",
		"___##___#__#",
		"##_#_____##_",
		"##_#_____##_",
		"___##___#__#",
		"____#______#",
		"_____#_##___",
	}

	gosperGliderGun = []string{
		"________________________#___________",
		"______________________#_#___________",
		"____________##______##____________##",
		"___________#___#____##____________##",
		"##________#_____#___##______________",
		"##________#___#_##____#_#___________",
		"__________#_____#_______#___________",
		"___________#___#____________________",
		"____________##______________________",
	}
)

//shapeNames is index-aligned with GetShape
var shapeNames = [ShapesN]string{
	"featherweight spaceship",
	"copperhead",
	"gosper glider gun",
	"stripes",
	"random",
}

//rng feeds the random generator, tests swap it for a fixed seed
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

//Rand creates a universe where every cell is an unbiased coin flip
func Rand(width, height int) *Universe {
	u := New(width, height)
	for i := range u.cells {
		if rng.Intn(2) == 0 {
			u.cells[i] = Alive
		}
	}
	return u
}

//Stripes creates the deterministic striped universe:
//the cell at flat index i is alive when i%2 == 0 or i%7 == 0
func Stripes(width, height int) *Universe {
	u := New(width, height)
	for i := range u.cells {
		if i%2 == 0 || i%7 == 0 {
			u.cells[i] = Alive
		}
	}
	return u
}

//ShapeName returns the display name of the i. shape
func ShapeName(i int) string {
	if i < 0 || i >= ShapesN {
		return "unknown"
	}
	return shapeNames[i]
}

//GetShape creates a universe from the i. shape of the registry
//the generator shapes never fail, the figure shapes may not fit the display
//
//fails with ErrOutOfRange for an index at or above ShapesN,
//with ErrTooBig from FromFigur
func GetShape(wh int, i int) (*Universe, error) {
	switch i {
	case 0:
		return FromFigur(wh, featherweightSpaceship)
	case 1:
		return FromFigur(wh, copperhead)
	case 2:
		return FromFigur(wh, gosperGliderGun)
	case 3:
		return Stripes(wh, wh), nil
	case 4:
		return Rand(wh, wh), nil
	}
	return nil, errors.Wrapf(ErrOutOfRange, "shape %v of %v", i, ShapesN)
}
