package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPasswordHashing(t *testing.T) {
	user := NewUser("alex_climber", "alex@example.com", "supersecret", nil)

	require.NoError(t, user.HashPassword())
	assert.NotEqual(t, "supersecret", user.Password)
	assert.True(t, strings.HasPrefix(user.Password, "$2a$12$"), "expected a cost-12 bcrypt hash, got %q", user.Password)

	assert.NoError(t, user.CheckPassword("supersecret"))
	assert.Error(t, user.CheckPassword("wrongpassword"))
}

func TestNewValidatedUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		user := NewUser("alex_climber", "alex@example.com", "supersecret", nil)
		validated, err := NewValidatedUser(user)
		require.NoError(t, err)
		assert.Same(t, user, validated.GetUser())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		for name, user := range map[string]*User{
			"empty username": NewUser("", "alex@example.com", "supersecret", nil),
			"empty email":    NewUser("alex_climber", "", "supersecret", nil),
			"bad email":      NewUser("alex_climber", "not-an-address", "supersecret", nil),
			"empty password": NewUser("alex_climber", "alex@example.com", "", nil),
		} {
			_, err := NewValidatedUser(user)
			assert.Error(t, err, name)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	user := NewUser("alex_climber", "alex@example.com", "supersecret", nil)
	before := user.UpdatedAt

	height, reach := 178, 182
	bio := "Mostly boulders."
	require.NoError(t, user.UpdateProfile(nil, &height, &reach, &bio))

	assert.Equal(t, &height, user.HeightCM)
	assert.Equal(t, &reach, user.ReachCM)
	assert.Equal(t, &bio, user.Bio)
	assert.False(t, user.UpdatedAt.Before(before))
}
