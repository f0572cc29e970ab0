package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserAndAuthenticate(t *testing.T) {
	f := newFixture(t)

	view, err := f.s.CreateUser("Alice@Example.com", "Alice", "hunter2", "Alice", "Smith", "/common/pfp-1.png", "hi")
	require.NoError(t, err)
	assert.NotEmpty(t, view.Id)
	assert.Equal(t, "alice@example.com", view.EmailAddress)
	assert.Equal(t, "alice", view.Username)

	got, err := f.s.Authenticate("alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, view.Id, got.Id)

	_, err = f.s.Authenticate("alice@example.com", "wrong")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = f.s.Authenticate("nobody@example.com", "hunter2")
	assert.True(t, IsNotFound(err))
}

func TestCreateUserUniqueness(t *testing.T) {
	f := newFixture(t)

	_, err := f.s.CreateUser("alice@example.com", "alice", "hunter2", "Alice", "Smith", "", "")
	require.NoError(t, err)

	_, err = f.s.CreateUser("alice@example.com", "alice2", "hunter2", "Alice", "Smith", "", "")
	assert.True(t, errors.Is(err, ErrConflict), "duplicate email")

	_, err = f.s.CreateUser("other@example.com", "ALICE", "hunter2", "Alice", "Smith", "", "")
	assert.True(t, errors.Is(err, ErrConflict), "duplicate username, case-insensitive")

	_, err = f.s.CreateUser("", "bob", "hunter2", "Bob", "Jones", "", "")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)

	alice, err := f.s.CreateUser("alice@example.com", "alice", "hunter2", "Alice", "Smith", "", "")
	require.NoError(t, err)
	_, err = f.s.CreateUser("bob@example.com", "bob", "hunter2", "Bob", "Jones", "", "")
	require.NoError(t, err)

	require.NoError(t, f.s.UpdateProfile(alice.Id, "Alicia", "Smith", "alicia", "new bio", "/common/pfp-2.png"))

	got, err := f.s.GetUser(alice.Id)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.FirstName)
	assert.Equal(t, "alicia", got.Username)
	assert.Equal(t, "new bio", got.Biography)

	// Keeping your own username is not a conflict.
	require.NoError(t, f.s.UpdateProfile(alice.Id, "Alicia", "Smith", "alicia", "new bio", ""))

	err = f.s.UpdateProfile(alice.Id, "Alicia", "Smith", "bob", "", "")
	assert.True(t, errors.Is(err, ErrConflict))

	err = f.s.UpdateProfile("no-such-user", "X", "Y", "unique-enough", "", "")
	assert.True(t, IsNotFound(err))
}

func TestVerifyUsernameAndEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.s.CreateUser("alice@example.com", "alice", "hunter2", "Alice", "Smith", "", "")
	require.NoError(t, err)

	available, err := f.s.VerifyUsername("alice")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = f.s.VerifyUsername("carol")
	require.NoError(t, err)
	assert.True(t, available)

	available, err = f.s.VerifyEmail("ALICE@example.com")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = f.s.VerifyEmail("carol@example.com")
	require.NoError(t, err)
	assert.True(t, available)
}
