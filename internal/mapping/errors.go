package mapping

import "errors"

// Resolution errors. Returned errors wrap one of these sentinels together
// with the offending reference, so callers can match with errors.Is.
var (
	ErrMalformedName      = errors.New("malformed name")
	ErrColorNotFound      = errors.New("color not found")
	ErrGroupNotFound      = errors.New("color group not found")
	ErrUnqualifiedBinding = errors.New("binding reference must be qualified")
	ErrCategoryNotFound   = errors.New("binding category not found")
	ErrElementNotFound    = errors.New("binding element not found")
)
