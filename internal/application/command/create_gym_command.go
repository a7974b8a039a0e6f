package command

import "cragfeed/internal/application/common"

type CreateGymCommand struct {
	Name     string `json:"name" validate:"required,max=120"`
	Location string `json:"location" validate:"required,max=120"`
}

type CreateGymCommandResult struct {
	Gym *common.GymResult `json:"gym"`
}
