package services

import "errors"

// Client-facing validation failures. Both are detected before any write.
var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidAmount = errors.New("amount must be a positive number")
)
