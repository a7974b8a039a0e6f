package command

import "cragfeed/internal/application/common"

type CreateSessionCommand struct {
	Location        string  `json:"location" validate:"required,max=120"`
	Title           string  `json:"title" validate:"required,max=200"`
	TotalSends      int     `json:"totalSends" validate:"min=0"`
	RoutesClimbed   int     `json:"routesClimbed" validate:"min=0"`
	DurationMinutes int     `json:"durationMinutes" validate:"required,min=1"`
	HardestSend     *string `json:"hardestSend" validate:"omitempty,max=16"`
}

type CreateSessionCommandResult struct {
	Session *common.SessionResult `json:"session"`
}
