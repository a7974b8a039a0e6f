package command

import "cragfeed/internal/application/common"

type RegisterUserCommand struct {
	Username  string  `json:"username" validate:"required,min=3,max=32"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8,max=72"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,url"`
}

type RegisterUserCommandResult struct {
	User  *common.UserResult `json:"user"`
	Token string             `json:"token"`
}
