package commons

import "errors"

// Sentinel kinds for search client errors.
var (
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrMalformedResponse = errors.New("malformed response")
)
