package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove          = errors.New("illegal move")
	ErrConcurrentMove       = errors.New("another move is in progress")
	ErrInvalidConfiguration = errors.New("invalid configuration")

	ErrNotYourTurn  = fmt.Errorf("%w: it's not your turn", ErrIllegalMove)
	ErrInvalidHole  = fmt.Errorf("%w: invalid hole index", ErrIllegalMove)
	ErrEmptyHole    = fmt.Errorf("%w: hole is empty", ErrIllegalMove)
	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrIllegalMove)
)
