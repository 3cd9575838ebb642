package store

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrMissingField    = errors.New("missing field")
)
