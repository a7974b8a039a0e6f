package repositories

import (
	"context"

	"cragfeed/internal/domain/entities"
)

// SessionUpdate carries the partial-update fields for a session. Nil
// pointers mean "leave as is", which keeps an explicit zero (e.g.
// totalSends: 0) distinguishable from an absent field.
type SessionUpdate struct {
	Location        *string
	Title           *string
	TotalSends      *int
	RoutesClimbed   *int
	DurationMinutes *int
	HardestSend     *string
}

// SessionRepository exposes session CRUD plus the one aggregation query
// the feed needs. Reads denormalize the owning user and the media list
// (ordered by order index ascending).
//
// Update and Delete scope the row by both id and owner id, so a missing
// session and a session owned by someone else are the same
// domain.ErrNotFound.
type SessionRepository interface {
	Create(ctx context.Context, session *entities.ValidatedSession) (*entities.Session, error)
	FindByID(ctx context.Context, id int) (*entities.Session, error)

	// FeedPage returns sessions ordered by created_at descending with id
	// descending as the tiebreak. Never returns more than limit rows.
	FeedPage(ctx context.Context, offset, limit int) ([]*entities.Session, error)
	Count(ctx context.Context) (int64, error)

	Update(ctx context.Context, id, ownerID int, update *SessionUpdate) (*entities.Session, error)
	Delete(ctx context.Context, id, ownerID int) error

	AttachMedia(ctx context.Context, ownerID int, media *entities.ValidatedMedia) (*entities.Media, error)
}
