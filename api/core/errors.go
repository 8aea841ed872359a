package core

import "errors"

var (
	ErrBadArguments      = errors.New("bad arguments")
	ErrNotFound          = errors.New("not found")
	ErrMalformedDocument = errors.New("malformed document")
	ErrUnavailable       = errors.New("analysis unavailable")
)
