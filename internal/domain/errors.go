package domain

import "fmt"

// NotFoundError indicates a lookup for an unknown table id or yield class.
// It is the expected, recoverable failure mode; callers map it to their
// protocol's not-found response.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewTableNotFound reports an id absent from the metadata source.
func NewTableNotFound(id int) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Yield table with ID %d not found.", id)}
}

// NewClassNotFound reports a yield class absent from a table, including
// a bracketing class requested by interpolation.
func NewClassNotFound(class, tableID int) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Yield class %d not found in yield table %d.", class, tableID)}
}

// MalformedRowError indicates a structural field (id, yield_class, age)
// that fails to parse. Unlike a blank measurement cell this is corrupt
// source data and fails the whole load.
type MalformedRowError struct {
	Line   int
	Column string
	Value  string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row at line %d: column %q: cannot parse %q", e.Line, e.Column, e.Value)
}
