package entity

import "errors"

var (
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrNotConfigured        = errors.New("integration is not configured")
	ErrProvider             = errors.New("provider request failed")
	ErrForbiddenSQL         = errors.New("only SELECT queries are allowed")
)
