package store

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrCancelled = errors.New("appointment is cancelled")
)
