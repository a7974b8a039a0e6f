package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cragfeed/internal/infrastructure/db/memory"
)

func TestLoad(t *testing.T) {
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	gyms := memory.NewGymRepository(store)
	sessions := memory.NewSessionRepository(store)
	ctx := context.Background()

	require.NoError(t, Load(ctx, users, gyms, sessions))

	gymList, err := gyms.List(ctx)
	require.NoError(t, err)
	assert.Len(t, gymList, 3)

	count, err := sessions.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	alex, err := users.FindByUsername(ctx, "alex_climber")
	require.NoError(t, err)
	assert.NoError(t, alex.CheckPassword("password"))

	// Newest first: durations are 116, 90, 45 over three days.
	page, err := sessions.FeedPage(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, 116, page[0].DurationMinutes)
	assert.Equal(t, 90, page[1].DurationMinutes)
	assert.Equal(t, 45, page[2].DurationMinutes)
}

func TestLoadIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	gyms := memory.NewGymRepository(store)
	sessions := memory.NewSessionRepository(store)
	ctx := context.Background()

	require.NoError(t, Load(ctx, users, gyms, sessions))
	require.NoError(t, Load(ctx, users, gyms, sessions))

	gymList, err := gyms.List(ctx)
	require.NoError(t, err)
	assert.Len(t, gymList, 3)

	count, err := sessions.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
