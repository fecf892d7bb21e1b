package contract

import "errors"

var (
	// ErrValidation reports malformed payloads or stage inputs.
	ErrValidation = errors.New("validation failed")
	// ErrMissingCredential reports an absent or blank backend credential.
	// It is a configuration error, not a pipeline error.
	ErrMissingCredential = errors.New("guidance credential is missing")
	// ErrGuidanceBackend reports a network or backend failure from the
	// text-generation collaborator.
	ErrGuidanceBackend = errors.New("guidance backend failed")
	// ErrEmptyGuidance reports that the backend returned no usable text.
	ErrEmptyGuidance = errors.New("guidance backend returned empty text")
)
