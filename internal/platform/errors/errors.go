package apperrors

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidSlotKey    = errors.New("invalid slot key")
	ErrSlotOutsideWindow = errors.New("slot outside work window")
	ErrInvalidWindow     = errors.New("invalid work window")
	ErrPersistence       = errors.New("persistence backend failure")
)
