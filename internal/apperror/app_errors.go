package apperror

import "errors"

var (
	ErrInvalidInteger     = errors.New("invalid integer")
	ErrInvalidBoardSize   = errors.New("invalid board size")
	ErrInvalidMark        = errors.New("invalid mark")
	ErrPositionOutOfRange = errors.New("position is out of range")
)
