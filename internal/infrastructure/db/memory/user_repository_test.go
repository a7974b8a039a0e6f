package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cragfeed/internal/domain"
	"cragfeed/internal/domain/entities"
)

func mustCreateUser(t *testing.T, store *Store, username, email string) *entities.User {
	t.Helper()

	user := entities.NewUser(username, email, "supersecret", nil)
	validated, err := entities.NewValidatedUser(user)
	require.NoError(t, err)

	created, err := NewUserRepository(store).Create(context.Background(), validated)
	require.NoError(t, err)
	return created
}

func TestUserRepositoryCreateAssignsIDs(t *testing.T) {
	store := NewStore()

	first := mustCreateUser(t, store, "alex_climber", "alex@example.com")
	second := mustCreateUser(t, store, "sarah_sends", "sarah@example.com")

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestUserRepositoryLookups(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	created := mustCreateUser(t, store, "alex_climber", "alex@example.com")

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alex_climber", byID.Username)

	byEmail, err := repo.FindByEmail(ctx, "alex@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byUsername, err := repo.FindByUsername(ctx, "alex_climber")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byUsername.ID)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepositoryReturnsCopies(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	created := mustCreateUser(t, store, "alex_climber", "alex@example.com")
	created.Username = "mutated"

	fresh, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alex_climber", fresh.Username)
}

func TestUserRepositoryUpdate(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	created := mustCreateUser(t, store, "alex_climber", "alex@example.com")

	bio := "Mostly boulders."
	require.NoError(t, created.UpdateProfile(nil, nil, nil, &bio))
	validated, err := entities.NewValidatedUser(created)
	require.NoError(t, err)

	updated, err := repo.Update(ctx, validated)
	require.NoError(t, err)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "Mostly boulders.", *updated.Bio)

	missing := entities.NewUser("ghost", "ghost@example.com", "supersecret", nil)
	missing.ID = 999
	validatedMissing, err := entities.NewValidatedUser(missing)
	require.NoError(t, err)
	_, err = repo.Update(ctx, validatedMissing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
