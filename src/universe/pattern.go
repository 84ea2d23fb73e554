package universe

import (
	"github.com/apex/log"
	"github.com/pkg/errors"
)

//fromLines builds a pattern universe from text lines
//'#' and '1' mean alive, '_', ' ' and '0' mean dead
//the width is the length of the first line, the height is the line count
//any other rune is logged as a warning and skipped without consuming a
//cell slot, so it shifts the rest of the line
func fromLines(lines []string) *Universe {
	cells := make([]Cell, 0, len(lines)*len(lines[0]))
	for _, line := range lines {
		for _, ch := range line {
			switch ch {
			case '#', '1':
				cells = append(cells, Alive)
			case '_', ' ', '0':
				cells = append(cells, Dead)
			default:
				log.WithField("char", string(ch)).Warn("unrecognized pattern character")
			}
		}
	}
	return &Universe{
		width:  len(lines[0]),
		height: len(lines),
		cells:  cells,
	}
}

//FromFigur creates a wh×wh universe with the figure placed in the middle
//on an odd size difference the extra margin goes to the bottom and right
//
//fails with ErrTooBig when the figure does not fit the display area
func FromFigur(wh int, figur []string) (*Universe, error) {
	f := fromLines(figur)
	if wh < f.height || wh < f.width {
		return nil, errors.Wrapf(ErrTooBig, "%vx%v figure on a %vx%v display", f.width, f.height, wh, wh)
	}

	u := New(wh, wh)
	startRow := (wh - f.height) / 2
	startCol := (wh - f.width) / 2

	j := 0
	for row := startRow; row < startRow+f.height; row++ {
		idx := u.getIndex(row, startCol)
		for i := 0; i < f.width; i++ {
			u.cells[idx+i] = f.cells[j]
			j++
		}
	}
	return u, nil
}
