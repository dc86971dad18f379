package plans

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrEmptyInput = errors.New("empty input")
)
