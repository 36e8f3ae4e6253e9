package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndIsCode(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeUnknownTimeZone, "unknown timezone \"Mars/Olympus\"", cause)

	require.True(t, IsCode(err, CodeUnknownTimeZone))
	require.False(t, IsCode(err, CodeInvalidInput))
	require.ErrorIs(t, err, cause)
	require.Equal(t, "unknown timezone \"Mars/Olympus\": boom", err.Error())
}

func TestIsCodeThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("plan: %w", Wrap(CodeInvalidInput, "bedtime malformed", nil))
	require.True(t, IsCode(err, CodeInvalidInput))
	require.Equal(t, CodeInvalidInput, CodeOf(err))
	require.Equal(t, "", CodeOf(errors.New("plain")))
}
