package universe

import "github.com/pkg/errors"

//recoverable failure kinds of shape selection and placement
//both propagate to the input handler, which ignores the action or shows
//a message, never crashes
var (
	//ErrOutOfRange is returned for a shape index not in the registry
	ErrOutOfRange = errors.New("shape index out of range")
	//ErrTooBig is returned when the display area is not big enough for the shape
	ErrTooBig = errors.New("display area not big enough for this shape")
)
