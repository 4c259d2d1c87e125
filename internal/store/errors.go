package store

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrUnknownCompany indicates a mutation targeted a company ID that does not
// exist in the store.
type ErrUnknownCompany struct {
	ID uuid.UUID
}

func (e *ErrUnknownCompany) Error() string {
	return fmt.Sprintf("unknown company: %s", e.ID)
}

// ErrUnknownMethod indicates a catalog operation targeted a method ID that
// does not exist.
type ErrUnknownMethod struct {
	ID string
}

func (e *ErrUnknownMethod) Error() string {
	return fmt.Sprintf("unknown communication method: %s", e.ID)
}

// ErrBadReorder indicates a reorder request that is not a permutation of the
// current catalog.
type ErrBadReorder struct {
	Reason string
}

func (e *ErrBadReorder) Error() string {
	return fmt.Sprintf("invalid reorder: %s", e.Reason)
}

// ErrMalformedDate indicates a date string that does not parse as YYYY-MM-DD.
// The offending log entry is rejected; nothing is written.
type ErrMalformedDate struct {
	Value string
	Cause error
}

func (e *ErrMalformedDate) Error() string {
	return fmt.Sprintf("malformed date %q: %v", e.Value, e.Cause)
}

func (e *ErrMalformedDate) Unwrap() error {
	return e.Cause
}
