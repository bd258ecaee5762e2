package board

import "errors"

// ErrMalformed indicates that text passed to Parse is not a hexagon drawing.
var ErrMalformed = errors.New("board: malformed hexagon drawing")
