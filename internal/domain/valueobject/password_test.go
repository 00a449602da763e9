package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPassword_Valid(t *testing.T) {
	p, err := NewPassword("s3cret-pw")
	require.NoError(t, err)
	assert.Equal(t, "s3cret-pw", p.Value())
}

func TestNewPassword_Rejections(t *testing.T) {
	_, err := NewPassword("")
	assert.ErrorIs(t, err, ErrPasswordEmpty)

	_, err = NewPassword("   ")
	assert.ErrorIs(t, err, ErrPasswordEmpty)

	_, err = NewPassword("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = NewPassword("1234567")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestNewPassword_ExactMinimumLength(t *testing.T) {
	_, err := NewPassword("12345678")
	assert.NoError(t, err)
}
