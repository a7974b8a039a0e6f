package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cragfeed/internal/application/command"
	"cragfeed/internal/application/interfaces"
	"cragfeed/internal/application/query"
	"cragfeed/internal/domain"
	"cragfeed/internal/domain/entities"
	"cragfeed/internal/infrastructure"
	"cragfeed/internal/infrastructure/db/memory"
	"cragfeed/internal/validation"
)

func newTestSessionService(t *testing.T) (interfaces.SessionService, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	events, err := infrastructure.NewEventPublisher("", zerolog.Nop())
	require.NoError(t, err)

	svc := NewSessionService(
		memory.NewSessionRepository(store),
		infrastructure.NewRedisService("", "", 0, zerolog.Nop()),
		events,
		zerolog.Nop(),
	)
	return svc, store
}

func seedUser(t *testing.T, store *memory.Store, username, email string) *entities.User {
	t.Helper()

	user := entities.NewUser(username, email, "supersecret", nil)
	validated, err := entities.NewValidatedUser(user)
	require.NoError(t, err)
	created, err := memory.NewUserRepository(store).Create(context.Background(), validated)
	require.NoError(t, err)
	return created
}

func createSessionCommand(title string) *command.CreateSessionCommand {
	return &command.CreateSessionCommand{
		Location:        "Movement Santa Clara",
		Title:           title,
		TotalSends:      5,
		RoutesClimbed:   8,
		DurationMinutes: 90,
	}
}

func TestSessionCreateAndGet(t *testing.T) {
	svc, store := newTestSessionService(t)
	ctx := context.Background()
	owner := seedUser(t, store, "alex_climber", "alex@example.com")

	created, err := svc.Create(ctx, owner.ID, createSessionCommand("Evening burn"))
	require.NoError(t, err)
	assert.Equal(t, owner.ID, created.Session.UserID)
	require.NotNil(t, created.Session.User)
	assert.Equal(t, "alex_climber", created.Session.User.Username)

	found, err := svc.GetByID(ctx, created.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, "Evening burn", found.Title)

	_, err = svc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionCreateValidatesInput(t *testing.T) {
	svc, store := newTestSessionService(t)
	owner := seedUser(t, store, "alex_climber", "alex@example.com")

	cmd := createSessionCommand("Bad duration")
	cmd.DurationMinutes = 0

	_, err := svc.Create(context.Background(), owner.ID, cmd)
	var validationErr *validation.Error
	assert.ErrorAs(t, err, &validationErr)
}

func TestSessionUpdateAndDeleteOwnership(t *testing.T) {
	svc, store := newTestSessionService(t)
	ctx := context.Background()
	owner := seedUser(t, store, "alex_climber", "alex@example.com")
	other := seedUser(t, store, "sarah_sends", "sarah@example.com")

	created, err := svc.Create(ctx, owner.ID, createSessionCommand("Original"))
	require.NoError(t, err)

	title := "Renamed"
	_, err = svc.Update(ctx, created.Session.ID, other.ID, &command.UpdateSessionCommand{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	updated, err := svc.Update(ctx, created.Session.ID, owner.ID, &command.UpdateSessionCommand{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Session.Title)
	assert.Equal(t, 90, updated.Session.DurationMinutes)

	assert.ErrorIs(t, svc.Delete(ctx, created.Session.ID, other.ID), domain.ErrNotFound)
	require.NoError(t, svc.Delete(ctx, created.Session.ID, owner.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.Session.ID, owner.ID), domain.ErrNotFound)
}

func TestAttachMedia(t *testing.T) {
	svc, store := newTestSessionService(t)
	ctx := context.Background()
	owner := seedUser(t, store, "alex_climber", "alex@example.com")

	created, err := svc.Create(ctx, owner.ID, createSessionCommand("With media"))
	require.NoError(t, err)

	result, err := svc.AttachMedia(ctx, created.Session.ID, owner.ID, &command.AttachMediaCommand{
		URL:  "https://cdn.example.com/a.jpg",
		Type: "photo",
	})
	require.NoError(t, err)
	assert.Equal(t, "photo", result.Media.Type)

	// The photo/video duration rule crosses fields and still lands as a
	// validation error.
	duration := 30
	_, err = svc.AttachMedia(ctx, created.Session.ID, owner.ID, &command.AttachMediaCommand{
		URL:      "https://cdn.example.com/b.jpg",
		Type:     "photo",
		Duration: &duration,
	})
	var validationErr *validation.Error
	assert.ErrorAs(t, err, &validationErr)

	_, err = svc.AttachMedia(ctx, created.Session.ID, owner.ID, &command.AttachMediaCommand{
		URL:  "https://cdn.example.com/c.mp4",
		Type: "video",
	})
	assert.ErrorAs(t, err, &validationErr)
}

func TestFeedPagination(t *testing.T) {
	svc, store := newTestSessionService(t)
	ctx := context.Background()
	owner := seedUser(t, store, "alex_climber", "alex@example.com")

	for i := 0; i < 25; i++ {
		_, err := svc.Create(ctx, owner.ID, createSessionCommand("Session"))
		require.NoError(t, err)
	}

	first, err := svc.Feed(ctx, query.NewFeedQuery(1, 20))
	require.NoError(t, err)
	assert.Len(t, first.Sessions, 20)
	assert.Equal(t, 1, first.Pagination.Page)
	assert.Equal(t, 2, first.Pagination.TotalPages)
	assert.True(t, first.Pagination.HasMore)

	second, err := svc.Feed(ctx, query.NewFeedQuery(2, 20))
	require.NoError(t, err)
	assert.Len(t, second.Sessions, 5)
	assert.False(t, second.Pagination.HasMore)

	third, err := svc.Feed(ctx, query.NewFeedQuery(3, 20))
	require.NoError(t, err)
	assert.Empty(t, third.Sessions)
	assert.False(t, third.Pagination.HasMore)
}

func TestFeedEmptyStore(t *testing.T) {
	svc, _ := newTestSessionService(t)

	feed, err := svc.Feed(context.Background(), query.NewFeedQuery(1, 20))
	require.NoError(t, err)
	assert.Empty(t, feed.Sessions)
	assert.Equal(t, 0, feed.Pagination.TotalPages)
	assert.False(t, feed.Pagination.HasMore)
}

func TestFeedValidatesQuery(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	var validationErr *validation.Error
	_, err := svc.Feed(ctx, query.NewFeedQuery(0, 20))
	assert.ErrorAs(t, err, &validationErr)
	_, err = svc.Feed(ctx, query.NewFeedQuery(1, 101))
	assert.ErrorAs(t, err, &validationErr)
}

func TestFeedFormatsDurations(t *testing.T) {
	svc, store := newTestSessionService(t)
	ctx := context.Background()
	owner := seedUser(t, store, "alex_climber", "alex@example.com")

	cmd := createSessionCommand("Long one")
	cmd.DurationMinutes = 116
	_, err := svc.Create(ctx, owner.ID, cmd)
	require.NoError(t, err)

	feed, err := svc.Feed(ctx, query.NewFeedQuery(1, 20))
	require.NoError(t, err)
	require.Len(t, feed.Sessions, 1)
	assert.Equal(t, "1h 56m", feed.Sessions[0].Stats.Duration)
}

func TestTimelineKeepsLegacyShape(t *testing.T) {
	svc, store := newTestSessionService(t)
	ctx := context.Background()
	owner := seedUser(t, store, "alex_climber", "alex@example.com")

	_, err := svc.Create(ctx, owner.ID, createSessionCommand("Morning burn"))
	require.NoError(t, err)

	timeline, err := svc.Timeline(ctx)
	require.NoError(t, err)
	require.Len(t, timeline, 1)
	assert.Equal(t, 5, timeline[0].TotalSend)
	assert.Equal(t, 90, timeline[0].Duration)
	assert.Equal(t, "Movement Santa Clara", timeline[0].Gym.Name)
	assert.Equal(t, "alex_climber", timeline[0].User.Username)

	emptySvc, _ := newTestSessionService(t)
	empty, err := emptySvc.Timeline(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
