package model

import "errors"

// Error kinds shared by the store, repository and service layers.
// Callers wrap them with context and match with errors.Is.
var (
	// ErrValidation indicates malformed, missing or mismatched input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the addressed entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrReferentialIntegrity indicates a foreign reference points at a missing entity.
	ErrReferentialIntegrity = errors.New("referenced entity does not exist")

	// ErrPersistence indicates the underlying store rejected or failed an operation.
	ErrPersistence = errors.New("persistence failure")
)
