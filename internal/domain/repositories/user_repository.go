package repositories

import (
	"context"

	"cragfeed/internal/domain/entities"
)

// UserRepository is implemented by the gorm store and the in-memory test
// double. Lookups return domain.ErrNotFound when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindByID(ctx context.Context, id int) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
}
