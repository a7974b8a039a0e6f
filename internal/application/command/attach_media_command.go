package command

import "cragfeed/internal/application/common"

type AttachMediaCommand struct {
	URL          string  `json:"url" validate:"required,url"`
	Type         string  `json:"type" validate:"required,oneof=photo video"`
	ThumbnailURL *string `json:"thumbnailUrl" validate:"omitempty,url"`
	// Duration is in seconds. Required for videos, must be absent for
	// photos; the entity enforces the cross-field rule.
	Duration   *int    `json:"duration" validate:"omitempty,min=1"`
	RouteGrade *string `json:"routeGrade" validate:"omitempty,max=16"`
	RouteColor *string `json:"routeColor" validate:"omitempty,max=32"`
	OrderIndex int     `json:"orderIndex" validate:"min=0"`
}

type AttachMediaCommandResult struct {
	Media *common.MediaResult `json:"media"`
}
