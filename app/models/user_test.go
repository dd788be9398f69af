package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	user, err := CreateUser("alice", "alice@example.com", "Str0ng!Pass")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, ROLE_USER, user.Role)
	assert.Equal(t, 0, user.Points)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "Str0ng!Pass", user.PasswordHash)
	assert.True(t, user.CheckPassword("Str0ng!Pass"))
	assert.False(t, user.CheckPassword("Wr0ng!Pass"))
}

func TestCreateUserValidation(t *testing.T) {
	if _, err := CreateUser("al", "alice@example.com", "Str0ng!Pass"); err == nil {
		t.Fatal("expected short username to be rejected")
	}
	if _, err := CreateUser("alice", "not-an-email", "Str0ng!Pass"); err == nil {
		t.Fatal("expected invalid email to be rejected")
	}
}

func TestPublicProjectionCarriesNoCredential(t *testing.T) {
	user, err := CreateUser("alice", "alice@example.com", "Str0ng!Pass")
	require.NoError(t, err)
	user.ID = 7
	user.Points = 25

	pub := user.Public()
	assert.Equal(t, uint(7), pub.ID)
	assert.Equal(t, "alice", pub.Username)
	assert.Equal(t, 25, pub.Points)

	raw, err := json.Marshal(pub)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), user.PasswordHash)
	assert.NotContains(t, string(raw), "password")
}

func TestUserJSONHidesPasswordHash(t *testing.T) {
	user, err := CreateUser("alice", "alice@example.com", "Str0ng!Pass")
	require.NoError(t, err)

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), user.PasswordHash)
}

func TestIsAdmin(t *testing.T) {
	assert.False(t, (&User{Role: ROLE_USER}).IsAdmin())
	assert.True(t, (&User{Role: ROLE_ADMIN}).IsAdmin())
}
