package backend

import "errors"

// ErrNotFound is returned when the backend has no record for the requested
// schedule or resource.
var ErrNotFound = errors.New("backend resource not found")
