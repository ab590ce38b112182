package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLLMUnavailable indicates the language-understanding backend is not
	// configured or not reachable. Keyword extraction degrades to the
	// deterministic fallback when this is returned.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrMalformedReply indicates the backend answered but the reply could
	// not be parsed into keywords.
	ErrMalformedReply = errors.New("malformed backend reply")

	// ErrNoExtractableText indicates a text-extraction strategy produced no
	// content. The ingestion cascade falls through to the next strategy.
	ErrNoExtractableText = errors.New("no extractable text")

	// ErrUnsupportedType indicates no extractor handles the file type.
	ErrUnsupportedType = errors.New("unsupported type")
)
