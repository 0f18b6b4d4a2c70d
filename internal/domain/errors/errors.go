package errors

import "errors"

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrMemberIDTaken = errors.New("member id already assigned")
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
)
