package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"asset-registry/core/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	var v errors.Violations
	assert.NoError(t, v.Err())

	v.Add("Kode base value is required")
	v.Add("quantity must be at least %d", 1)

	err := v.Err()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "Kode base value is required")
	assert.Contains(t, err.Error(), "quantity must be at least 1")

	var ve *errors.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Violations, 2)
}

func TestDuplicateKeyError(t *testing.T) {
	cause := stderrors.New("UNIQUE constraint failed")
	err := fmt.Errorf("insert: %w", errors.NewDuplicateKeyError("inventory", "A001", cause))

	assert.True(t, errors.Is(err, errors.ErrDuplicateKey))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "inventory 'A001' already exists")
}

func TestParseError(t *testing.T) {
	err := errors.NewParseError("data/broken.xlsx", stderrors.New("zip: not a valid zip file"))
	assert.True(t, errors.Is(err, errors.ErrMalformedFile))
	assert.Equal(t, "failed to parse data/broken.xlsx: zip: not a valid zip file", err.Error())
}
