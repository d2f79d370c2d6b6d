package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid", username: "john", password: "hunter2hunter2"},
		{name: "empty username", username: "", password: "hunter2hunter2", wantErr: ErrEmptyUsername},
		{name: "username too long", username: strings.Repeat("j", 65), password: "pw", wantErr: ErrUsernameTooLong},
		{name: "password too long", username: "john", password: strings.Repeat("p", 73), wantErr: ErrPasswordTooLong},
		{name: "no password at all", username: "john", password: "", wantErr: ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			user, err := NewUser(tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, user.Username)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestUserValidate_StoredUser(t *testing.T) {
	t.Parallel()

	// A user loaded from a store has a digest and no plaintext.
	user := &User{ID: 1, Username: "john", HashedPassword: "digest"}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}

func TestNewTaskRecord(t *testing.T) {
	t.Parallel()

	rec, err := NewTaskRecord("build", "compiling")
	require.NoError(t, err)
	assert.Equal(t, TaskRecord{Name: "build", Message: "compiling"}, rec)

	rec, err = NewTaskRecord("build", "")
	require.NoError(t, err)
	assert.Empty(t, rec.Message)

	_, err = NewTaskRecord("", "orphan")
	assert.ErrorIs(t, err, ErrEmptyTaskName)
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	anon := Anonymous()
	assert.False(t, anon.Authenticated())
	assert.Zero(t, anon.ID())
	assert.Empty(t, anon.Username())
	assert.Empty(t, anon.Credential())

	id := NewAuthenticated(42, "john", "raw-token")
	assert.True(t, id.Authenticated())
	assert.Equal(t, int64(42), id.ID())
	assert.Equal(t, "john", id.Username())
	assert.Equal(t, "raw-token", id.Credential())
}
