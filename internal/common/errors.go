package common

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup whose target row does not exist.
var ErrNotFound = errors.New("not found")

// FetchError is returned by read paths when a store query fails. It names
// the operation that failed; the raw store error is logged server-side and
// never reaches callers.
type FetchError struct {
	Resource string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s", e.Resource)
}

// NewFetchError builds a FetchError for the named resource, e.g.
// "revenue data" or "invoices".
func NewFetchError(resource string) *FetchError {
	return &FetchError{Resource: resource}
}
