package domain

import "errors"

// Domain errors
var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrNoFilesUploaded    = errors.New("no files uploaded")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
