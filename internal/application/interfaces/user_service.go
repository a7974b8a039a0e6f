package interfaces

import (
	"context"

	"cragfeed/internal/application/command"
	"cragfeed/internal/application/common"
)

type UserService interface {
	Register(ctx context.Context, cmd *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	GetProfile(ctx context.Context, id int) (*common.UserResult, error)
	GetPublicProfile(ctx context.Context, id int) (*common.PublicUserResult, error)
}
