package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common business logic failures.
var (
	ErrNotAnImage    = errors.New("uploaded file is not an image")
	ErrImageTooLarge = errors.New("uploaded image exceeds the size limit")
	ErrNotFound      = errors.New("requested resource not found")
)
