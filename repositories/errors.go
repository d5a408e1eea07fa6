package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when an operation targets an identifier
	// that does not exist in the database.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput is returned before touching the database when a
	// caller supplies values outside the allowed range or enum.
	ErrInvalidInput = errors.New("invalid input")
)

// ConstraintError wraps referential or check violations reported by the
// database, typically a purchase pointing at a missing customer or product.
type ConstraintError struct {
	Err error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint violation: %v", e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// QueryError wraps any other database failure for a single operation.
// The session is expected to continue after one of these.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// wrapDBError converts a raw GORM error into the repository taxonomy.
// Requires gorm.Config{TranslateError: true} so driver-specific foreign
// key errors arrive as gorm.ErrForeignKeyViolated.
func wrapDBError(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &ConstraintError{Err: err}
	default:
		return &QueryError{Op: op, Err: err}
	}
}

// IsConstraint reports whether err is a referential integrity failure.
func IsConstraint(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce)
}
