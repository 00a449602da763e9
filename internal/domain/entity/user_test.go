package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fgcplatform/identity/internal/domain/event"
	"github.com/fgcplatform/identity/internal/domain/valueobject"
)

func mustEmail(t *testing.T, raw string) valueobject.Email {
	t.Helper()
	e, err := valueobject.NewEmail(raw)
	require.NoError(t, err)
	return e
}

func TestNewUser(t *testing.T) {
	u, err := NewUser(mustEmail(t, "player@fgc.com"), "hash", "Player One")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, RoleUser, u.Role)
	assert.True(t, u.IsActive)
	assert.Nil(t, u.LastLoginAt)
	assert.False(t, u.CreatedAt.IsZero())

	evts := u.Events()
	require.Len(t, evts, 1)
	created, ok := evts[0].(event.UserCreated)
	require.True(t, ok)
	assert.Equal(t, u.ID, created.UserID)
	assert.Equal(t, "player@fgc.com", created.Email)
}

func TestNewUser_NameValidation(t *testing.T) {
	email := mustEmail(t, "player@fgc.com")

	_, err := NewUser(email, "hash", "")
	assert.ErrorIs(t, err, ErrNameEmpty)

	_, err = NewUser(email, "hash", "   ")
	assert.ErrorIs(t, err, ErrNameEmpty)

	_, err = NewUser(email, "hash", strings.Repeat("x", 101))
	assert.ErrorIs(t, err, ErrNameTooLong)
}

func TestNewAdmin(t *testing.T) {
	creator := uuid.New()
	u, err := NewAdmin(mustEmail(t, "boss@fgc.com"), "hash", "Boss", creator)
	require.NoError(t, err)

	assert.Equal(t, RoleAdmin, u.Role)
	assert.True(t, u.IsAdmin())

	evts := u.Events()
	require.Len(t, evts, 1)
	created, ok := evts[0].(event.AdminCreated)
	require.True(t, ok)
	assert.Equal(t, creator, created.CreatedByAdminID)
}

func TestRehydrate_RecordsNoEvents(t *testing.T) {
	u := Rehydrate(uuid.New(), mustEmail(t, "player@fgc.com"), "hash", "Player", RoleUser, true, time.Now().UTC(), nil)
	assert.Empty(t, u.Events())
}

func TestRecordLogin(t *testing.T) {
	u, err := NewUser(mustEmail(t, "player@fgc.com"), "hash", "Player")
	require.NoError(t, err)
	u.ClearEvents()

	u.RecordLogin()
	require.NotNil(t, u.LastLoginAt)

	evts := u.Events()
	require.Len(t, evts, 1)
	assert.Equal(t, "user.authenticated", evts[0].Name())
}

func TestChangePassword(t *testing.T) {
	u, err := NewUser(mustEmail(t, "player@fgc.com"), "old-hash", "Player")
	require.NoError(t, err)
	u.ClearEvents()

	u.ChangePassword("new-hash")
	assert.Equal(t, "new-hash", u.PasswordHash)

	evts := u.Events()
	require.Len(t, evts, 1)
	assert.Equal(t, "user.password_changed", evts[0].Name())
}

func TestActivationTransitions(t *testing.T) {
	u, err := NewUser(mustEmail(t, "player@fgc.com"), "hash", "Player")
	require.NoError(t, err)
	u.ClearEvents()

	u.Deactivate()
	assert.False(t, u.IsActive)
	assert.False(t, u.CanLogin())

	u.Reactivate()
	assert.True(t, u.IsActive)
	assert.True(t, u.CanLogin())

	evts := u.Events()
	require.Len(t, evts, 2)
	assert.Equal(t, "user.deactivated", evts[0].Name())
	assert.Equal(t, "user.reactivated", evts[1].Name())
}

func TestRoleTransitions(t *testing.T) {
	u, err := NewUser(mustEmail(t, "player@fgc.com"), "hash", "Player")
	require.NoError(t, err)
	u.ClearEvents()

	u.PromoteToAdmin()
	assert.True(t, u.IsAdmin())

	u.DemoteToUser()
	assert.False(t, u.IsAdmin())

	evts := u.Events()
	require.Len(t, evts, 2)
	assert.Equal(t, "user.promoted", evts[0].Name())
	assert.Equal(t, "user.demoted", evts[1].Name())
}

func TestEvents_ReturnsCopy(t *testing.T) {
	u, err := NewUser(mustEmail(t, "player@fgc.com"), "hash", "Player")
	require.NoError(t, err)

	evts := u.Events()
	require.Len(t, evts, 1)
	evts[0] = nil
	assert.NotNil(t, u.Events()[0])

	u.ClearEvents()
	assert.Empty(t, u.Events())
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("user")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, r)

	r, err = ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	_, err = ParseRole("superuser")
	assert.Error(t, err)
}
