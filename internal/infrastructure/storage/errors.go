package storage

import "errors"

// ErrObjectNotFound is returned when no archived object exists
var ErrObjectNotFound = errors.New("object not found")
