package errors

import "errors"

var (
	ErrNotFound = errors.New("admin profile not found")
)
