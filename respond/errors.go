package respond

import "errors"

var (
	// ErrSearcherRequired is returned when a search source is not provided.
	ErrSearcherRequired = errors.New("searcher required")

	// ErrInvalidOption is returned for out-of-range responder settings.
	ErrInvalidOption = errors.New("invalid responder option")
)
