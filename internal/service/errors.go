package service

import "errors"

var (
	// ErrInvalidInput wraps errors caused by the caller's input
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)
