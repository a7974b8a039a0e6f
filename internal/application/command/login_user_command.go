package command

import "cragfeed/internal/application/common"

type LoginUserCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginUserCommandResult struct {
	User  *common.UserResult `json:"user"`
	Token string             `json:"token"`
}
