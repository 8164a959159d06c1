package interpreter

import "errors"

var (
	ErrInvalidPlateauSize   = errors.New("invalid plateau size")
	ErrInvalidRobotPosition = errors.New("invalid robot position")
	ErrOutOfBounds          = errors.New("robot position is outside plateau")
	ErrNoPower              = errors.New("robot has no power")
	ErrInvalidInstructions  = errors.New("movement instructions are invalid")
	ErrMalformedBatch       = errors.New("malformed batch")
)
