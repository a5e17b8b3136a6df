package subscriber

import "errors"

var (
	ErrInvalidName  = errors.New("subscriber: invalid name")
	ErrInvalidEmail = errors.New("subscriber: invalid email")
	ErrStorage      = errors.New("subscriber: storage failure")
	ErrNotFound     = errors.New("subscriber: not found")
)
