package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessage(t *testing.T) {
	withValue := &ValidationError{Field: "amount", Value: "-5", Reason: "must be a positive number"}
	assert.Equal(t, "validation failed for amount='-5': must be a positive number", withValue.Error())

	withoutValue := &ValidationError{Field: "name", Reason: "must not be empty"}
	assert.Equal(t, "validation failed for name: must not be empty", withoutValue.Error())
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Collection: "bills", ID: "bill-1"}
	assert.Equal(t, "bills not found: bill-1", err.Error())
}

func TestPersistenceErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &PersistenceError{Collection: "bills", Op: "write", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}

func TestIsNotFound(t *testing.T) {
	base := &NotFoundError{Collection: "bills", ID: "x"}
	wrapped := fmt.Errorf("loading bill: %w", base)

	assert.True(t, IsNotFound(base))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsNotFound(errors.New("other")))
	assert.False(t, IsNotFound(nil))
}

func TestIsValidation(t *testing.T) {
	base := &ValidationError{Field: "name", Reason: "empty"}
	wrapped := fmt.Errorf("checking bill: %w", base)

	assert.True(t, IsValidation(base))
	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsValidation(&NotFoundError{}))
}
