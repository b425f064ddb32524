package csrand

import (
	"errors"
)

// ErrInvalidArgument is returned, wrapped with argument context, when
// an operation is called with arguments outside its domain: a negative
// byte count, or a range whose min is not less than its max.
//
// It is always detected before any entropy is consumed.
// Check for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
