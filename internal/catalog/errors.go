package catalog

import "fmt"

// DuplicateIDError is returned by Add when a topic with the same ID is
// already stored.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate topic id %q", e.ID)
}

// NotFoundError is returned by Get for an unknown ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown topic %q", e.ID)
}
