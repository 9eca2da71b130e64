package domain

import "errors"

var (
	ErrInvalidPIN  = errors.New("invalid PIN")
	ErrPINTooShort = errors.New("new PIN must be at least 4 digits")
	ErrPINMismatch = errors.New("new PINs do not match")
)
