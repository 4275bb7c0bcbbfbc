package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNoQueries = errors.New("no photo queries configured")
)
