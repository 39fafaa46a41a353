package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitpichardo/self-starter/internal/validation"
)

func TestValidateEmail(t *testing.T) {
	require.NoError(t, validation.ValidateEmail("alice@example.com"))
	require.NoError(t, validation.ValidateEmail("a.b+tag@sub.example.co"))

	require.Error(t, validation.ValidateEmail(""))
	require.Error(t, validation.ValidateEmail("not-an-email"))
	require.Error(t, validation.ValidateEmail("missing@domain@twice.com"))
	require.Error(t, validation.ValidateEmail(strings.Repeat("a", 250)+"@x.com"))
}

func TestValidatePassword(t *testing.T) {
	require.NoError(t, validation.ValidatePassword("tr0ub4dor&3"))

	require.Error(t, validation.ValidatePassword("short"))
	require.Error(t, validation.ValidatePassword(strings.Repeat("x", 73)))
	require.Error(t, validation.ValidatePassword("password123"))
	require.Error(t, validation.ValidatePassword("MyQwertyKey"))
}

func TestValidateName(t *testing.T) {
	require.NoError(t, validation.ValidateName("Alice"))
	require.NoError(t, validation.ValidateName("  Bo  "))

	require.Error(t, validation.ValidateName(""))
	require.Error(t, validation.ValidateName("   "))
	require.Error(t, validation.ValidateName("A"))
	require.Error(t, validation.ValidateName(strings.Repeat("n", 51)))
}

func TestErrorIsUserFacing(t *testing.T) {
	err := validation.ValidatePassword("short")

	var vErr validation.Error
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "password must be at least 8 characters", vErr.Error())
}
