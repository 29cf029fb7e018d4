package store

import "errors"

var (
	// ErrKeyNotFound is returned when an operation targets an absent key
	ErrKeyNotFound = errors.New("key not found")
)
