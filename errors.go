package helpmd

import "errors"

// Sentinel errors for library operations.
var (
	ErrMissingToken     = errors.New("access token cannot be empty")
	ErrMissingWorkspace = errors.New("workspace directory cannot be empty")
	ErrMissingTitle     = errors.New("article title cannot be empty")
	ErrEmptyBody        = errors.New("article body cannot be empty")
)
