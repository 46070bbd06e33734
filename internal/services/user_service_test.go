package services

import (
	"path/filepath"
	"testing"

	"github.com/humbertoconstantino/auth-api/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *UserService {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return NewUserService(db)
}

func TestCreateUser_And_GetByID(t *testing.T) {
	t.Parallel()

	s := newTestService(t)

	created, err := s.CreateUser("Ana", "ana@x.com", "p1")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Empty(t, created.PasswordHash, "CreateUser must not return the hash")

	got, err := s.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "ana@x.com", got.Email)
	assert.Empty(t, got.PasswordHash, "ID lookup must exclude the hash")
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()

	s := newTestService(t)

	_, err := s.CreateUser("Ana", "ana@x.com", "p1")
	require.NoError(t, err)

	_, err = s.CreateUser("Other Ana", "ana@x.com", "p2")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetUserByID_NotFound(t *testing.T) {
	t.Parallel()

	s := newTestService(t)

	_, err := s.GetUserByID("no-such-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserByEmail_IncludesHash(t *testing.T) {
	t.Parallel()

	s := newTestService(t)

	_, err := s.CreateUser("Ana", "ana@x.com", "p1")
	require.NoError(t, err)

	got, err := s.GetUserByEmail("ana@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, got.PasswordHash)
	assert.NotEqual(t, "p1", got.PasswordHash)

	_, err = s.GetUserByEmail("absent@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthenticateUser(t *testing.T) {
	t.Parallel()

	s := newTestService(t)

	created, err := s.CreateUser("Ana", "ana@x.com", "p1")
	require.NoError(t, err)

	got, err := s.AuthenticateUser("ana@x.com", "p1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Empty(t, got.PasswordHash)

	_, err = s.AuthenticateUser("ana@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	_, err = s.AuthenticateUser("absent@x.com", "p1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
