package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_UniqueAndNonEmpty(t *testing.T) {
	a := NewID()
	b := NewID()

	assert.False(t, a.IsEmpty())
	assert.NotEqual(t, a, b)
	assert.Len(t, a.String(), 36)
}

func TestParseExecutionCase(t *testing.T) {
	c, err := ParseExecutionCase("baseline")
	require.NoError(t, err)
	assert.Equal(t, ExecutionCase("baseline"), c)

	_, err = ParseExecutionCase("   ")
	assert.Error(t, err)
}

func TestParseFoldID(t *testing.T) {
	f, err := ParseFoldID("0")
	require.NoError(t, err)
	assert.Equal(t, FoldID("0"), f)

	_, err = ParseFoldID("")
	assert.Error(t, err)
}

func TestErrorConstructorsWrapSentinels(t *testing.T) {
	assert.ErrorIs(t, NewCaseMismatchError("a", "b"), ErrCaseMismatch)
	assert.ErrorIs(t, NewUnknownFoldError("0"), ErrUnknownFold)
	assert.ErrorIs(t, NewUnknownCaseError("c"), ErrUnknownCase)
	assert.ErrorIs(t, NewInconsistentInputError("r"), ErrInconsistentInput)
	assert.ErrorIs(t, NewInputValidationError("r"), ErrInputValidation)
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsLookupError(NewUnknownFoldError("0")))
	assert.True(t, IsLookupError(NewUnknownCaseError("c")))
	assert.False(t, IsLookupError(NewInputValidationError("r")))

	assert.True(t, IsValidationError(NewInconsistentInputError("r")))
	assert.True(t, IsValidationError(NewCaseMismatchError("a", "b")))
	assert.False(t, IsValidationError(NewUnknownFoldError("0")))
}

func TestHash_DeterministicPerPayload(t *testing.T) {
	a := NewHash([]byte("payload"))
	b := NewHash([]byte("payload"))
	c := NewHash([]byte("other"))

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.IsEmpty())
	assert.Len(t, a.String(), 64)
}

func TestConfigHash_TracksPayload(t *testing.T) {
	a := NewConfigHash([]byte("RelativeDiff|1000"))
	b := NewConfigHash([]byte("RelativeDiff|1000"))
	c := NewConfigHash([]byte("AbsoluteDiff|1000"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
