package plot

import "errors"

var (
	ErrCantChangeDrawingState = errors.New("cannot change drawing state")
	ErrOutOfBounds            = errors.New("position outside of the workspace")
	ErrUnknownWorkspace       = errors.New("unknown workspace")
	ErrEmptyPath              = errors.New("nothing to draw")
)
