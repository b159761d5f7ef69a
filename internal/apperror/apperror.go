// Package apperror holds the error taxonomy shared by services and controllers.
package apperror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownUser and ErrWrongPassword are the two authentication failures.
	ErrUnknownUser   = errors.New("user not found")
	ErrWrongPassword = errors.New("invalid password")

	// ErrRepository wraps any failed read or write against persistence.
	ErrRepository = errors.New("repository error")

	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a create collides with an existing key.
	ErrDuplicate = errors.New("already exists")

	// ErrNoQuiz is returned when a course has no questions to submit against.
	ErrNoQuiz = errors.New("no quiz available")

	// ErrUnavailable marks an optional integration that is not configured.
	ErrUnavailable = errors.New("service unavailable")
)

// ValidationError lists the fields that blocked a request before it reached
// the repository.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

func NewValidation(message string, fields ...string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// Repository wraps err so that errors.Is(err, ErrRepository) holds while
// keeping the original cause in the chain.
func Repository(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrRepository, err)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
