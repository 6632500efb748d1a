package errs

import "errors"

// Use-case level sentinel errors shared by commands and queries
var (
	// Referenced entity is missing or the caller may not see it. Both cases
	// produce the same error so existence is not leaked.
	ErrNotFound = errors.New("not found")

	// Storage failure; the enclosing transaction was rolled back.
	ErrPersistence = errors.New("persistence failure")

	// Draft errors
	ErrDraftNotFound = errors.New("reservation draft not found or expired")

	// Upload errors
	ErrUploadFailed = errors.New("payment proof upload failed")
)
