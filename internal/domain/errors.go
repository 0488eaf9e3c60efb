package domain

import "errors"

var (
	// ErrNotFound signals that the collection is missing on the backend.
	ErrNotFound = errors.New("collection not found")

	// ErrNoMatch is the normal miss signal: similarity or intent confidence
	// below the configured floor. The cascade treats it as "try next stage",
	// never as a failure.
	ErrNoMatch = errors.New("no confident match")

	// ErrDimensionMismatch signals that stored vectors do not match the
	// active embedding model output size. Recovery is a full rebuild,
	// never an in-place patch.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)
