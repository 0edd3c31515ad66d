package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsValidation(NewValidation("missing field")))
	assert.True(t, IsNotFound(NewNotFound("not found")))
	assert.True(t, IsConflict(NewConflict("duplicate")))
	assert.True(t, IsUnauthorized(NewUnauthorized("nope")))
	assert.True(t, IsInternal(NewInternal("boom", nil)))

	assert.False(t, IsValidation(NewNotFound("not found")))
	assert.False(t, IsConflict(stderrors.New("plain error")))
}

func TestWrap(t *testing.T) {
	t.Run("PreservesType", func(t *testing.T) {
		err := Wrap(NewConflict("duplicate"), "creating user")
		assert.True(t, IsConflict(err))
		assert.Contains(t, err.Error(), "creating user")
	})

	t.Run("PlainErrorBecomesInternal", func(t *testing.T) {
		cause := stderrors.New("connection refused")
		err := Wrap(cause, "query failed")
		assert.True(t, IsInternal(err))
		assert.ErrorIs(t, err, cause)
	})

	t.Run("NilStaysNil", func(t *testing.T) {
		require.NoError(t, Wrap(nil, "no-op"))
	})
}
