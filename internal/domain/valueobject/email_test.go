package valueobject

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail_Valid(t *testing.T) {
	e, err := NewEmail("user@fgc.com")
	require.NoError(t, err)
	assert.Equal(t, "user@fgc.com", e.Value())
}

func TestNewEmail_NormalizesCaseAndWhitespace(t *testing.T) {
	e, err := NewEmail("  USER@FGC.COM  ")
	require.NoError(t, err)
	assert.Equal(t, "user@fgc.com", e.Value())
}

func TestNewEmail_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmailEmpty},
		{"whitespace only", "   ", ErrEmailEmpty},
		{"missing at sign", "userfgc.com", ErrEmailFormat},
		{"missing domain", "user@", ErrEmailFormat},
		{"missing local part", "@fgc.com", ErrEmailFormat},
		{"double at sign", "user@@fgc.com", ErrEmailFormat},
		{"space in local part", "user name@fgc.com", ErrEmailFormat},
		{"too long", strings.Repeat("a", 250) + "@fgc.com", ErrEmailTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEmail(tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewEmail_LongButWithinLimit(t *testing.T) {
	_, err := NewEmail(strings.Repeat("a", 240) + "@fgc.com")
	assert.NoError(t, err)
}

func TestEmail_Equals(t *testing.T) {
	a, err := NewEmail("User@FGC.com")
	require.NoError(t, err)
	b, err := NewEmail("user@fgc.com")
	require.NoError(t, err)
	c, err := NewEmail("other@fgc.com")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
