package adapter

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrInternalServerError = errors.New("gateway internal error")
	ErrServiceUnavailable  = errors.New("gateway unavailable")
	ErrInvalidResponse     = errors.New("invalid gateway response")
)
