// Package customerrors defines common errors for the record codec
// and its callers to match against.
package customerrors

import (
	"errors"
)

var (
	// ErrSchemaViolation is returned by record constructors when the
	// supplied values do not fit the record kind: too many attributes
	// for the kind's cap, or a datum inconsistent with its attribute.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrAttributeOutOfRange is returned when an attribute number is
	// outside the descriptor. Heap records recover reads past the end
	// as NULL instead, index records do not.
	ErrAttributeOutOfRange = errors.New("attribute number out of range")

	// ErrCorruptRecord means a record's byte layout violates an
	// internal invariant. The enclosing operation must be aborted:
	// continuing would read adjacent memory as attribute data.
	ErrCorruptRecord = errors.New("corrupt record")

	// ErrRecordTooLarge is returned before any buffer is allocated
	// when a record's size cannot be represented in its header.
	ErrRecordTooLarge = errors.New("record too large")
)
