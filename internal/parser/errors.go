package parser

import "errors"

// Domain-specific errors for the parser package.
var (
	ErrEmptyContent = errors.New("message content is empty")
)
