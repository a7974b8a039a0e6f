package interfaces

import (
	"context"

	"cragfeed/internal/application/command"
	"cragfeed/internal/application/common"
	"cragfeed/internal/application/query"
)

type SessionService interface {
	Create(ctx context.Context, ownerID int, cmd *command.CreateSessionCommand) (*command.CreateSessionCommandResult, error)
	GetByID(ctx context.Context, id int) (*common.SessionResult, error)
	Update(ctx context.Context, id, ownerID int, cmd *command.UpdateSessionCommand) (*command.UpdateSessionCommandResult, error)
	Delete(ctx context.Context, id, ownerID int) error
	AttachMedia(ctx context.Context, sessionID, ownerID int, cmd *command.AttachMediaCommand) (*command.AttachMediaCommandResult, error)
	Feed(ctx context.Context, q *query.FeedQuery) (*common.FeedResult, error)
	Timeline(ctx context.Context) ([]common.TimelineSession, error)
}
