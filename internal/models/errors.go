package models

import "errors"

// Domain-specific errors returned by the data access layer and the dispatcher.
// Storage engine error types never cross the database package boundary; they
// are classified into one of these instead.
var (
	// ErrInvalidField indicates an update named a column outside the entity's allow-list
	ErrInvalidField = errors.New("field is not updatable")

	// ErrValueTooLong indicates storage rejected a value longer than its column allows
	ErrValueTooLong = errors.New("value too long for column")

	// ErrConstraintViolation indicates a foreign key, not-null or uniqueness rule rejected the statement
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrMalformedArgument indicates raw input could not be shaped into the operation's arguments
	ErrMalformedArgument = errors.New("malformed argument")

	// ErrInvalidCount indicates a bulk generation count that is not positive
	ErrInvalidCount = errors.New("count must be positive")

	// ErrUnknownEntity indicates an entity kind name that does not exist
	ErrUnknownEntity = errors.New("unknown entity kind")

	// ErrStorage wraps any other storage failure (connectivity, syntax, ...)
	ErrStorage = errors.New("storage error")
)

// IsRejectedInput reports whether err is a domain-validation failure, the
// class of errors that is reported back to the user as incorrect input.
func IsRejectedInput(err error) bool {
	return errors.Is(err, ErrInvalidField) ||
		errors.Is(err, ErrValueTooLong) ||
		errors.Is(err, ErrConstraintViolation) ||
		errors.Is(err, ErrMalformedArgument) ||
		errors.Is(err, ErrInvalidCount) ||
		errors.Is(err, ErrUnknownEntity)
}
