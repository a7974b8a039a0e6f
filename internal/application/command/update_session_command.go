package command

import "cragfeed/internal/application/common"

// UpdateSessionCommand is a partial update. Nil means "unchanged", so an
// explicit zero survives the trip through JSON.
type UpdateSessionCommand struct {
	Location        *string `json:"location" validate:"omitempty,min=1,max=120"`
	Title           *string `json:"title" validate:"omitempty,min=1,max=200"`
	TotalSends      *int    `json:"totalSends" validate:"omitempty,min=0"`
	RoutesClimbed   *int    `json:"routesClimbed" validate:"omitempty,min=0"`
	DurationMinutes *int    `json:"durationMinutes" validate:"omitempty,min=1"`
	HardestSend     *string `json:"hardestSend" validate:"omitempty,max=16"`
}

type UpdateSessionCommandResult struct {
	Session *common.SessionResult `json:"session"`
}
