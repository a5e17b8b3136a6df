package validator

import "errors"

// ErrValidationFailed matches every ValidationErrors value with errors.Is.
var ErrValidationFailed = errors.New("validation failed")

// Is lets callers test for ErrValidationFailed without unwrapping to the slice.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}
