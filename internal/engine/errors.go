package engine

import "errors"

var (
	ErrIndexOutOfRange = errors.New("card id out of range")
	ErrEmptyFold       = errors.New("fold has no card yet")
	ErrInvalidPlay     = errors.New("card cannot be played")
	ErrFoldOver        = errors.New("fold already complete")
	ErrDeckSize        = errors.New("deck cannot be dealt evenly")
)
