package interfaces

import (
	"context"

	"cragfeed/internal/application/command"
	"cragfeed/internal/application/common"
)

type GymService interface {
	Create(ctx context.Context, cmd *command.CreateGymCommand) (*command.CreateGymCommandResult, error)
	List(ctx context.Context) ([]common.GymResult, error)
}
