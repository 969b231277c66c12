package repository

import "errors"

// Custom error types shared by both provider repositories. The handler maps
// these to HTTP statuses with errors.Is.
var (
	ErrCityNotFound     = errors.New("city not found")
	ErrAPIKeyMissing    = errors.New("API key missing")
	ErrUpstream         = errors.New("upstream provider error")
	ErrMalformedPayload = errors.New("malformed upstream payload")
)
