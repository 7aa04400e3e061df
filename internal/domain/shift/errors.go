package shift

import "errors"

var (
	ErrShiftNotFound   = errors.New("shift not found")
	ErrShiftCodeExists = errors.New("shift code already exists")
)
