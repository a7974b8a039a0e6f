package common

import "time"

// The timeline predates the feed and keeps the field layout older clients
// were built against: totalSend (singular), integer minutes, a
// profilePicture alias and an embedded gym object.

type TimelineUser struct {
	ID             int     `json:"id"`
	Username       string  `json:"username"`
	ProfilePicture *string `json:"profilePicture"`
}

type TimelineGym struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type TimelineSession struct {
	ID            int          `json:"id"`
	Title         string       `json:"title"`
	Description   *string      `json:"description"`
	TotalSend     int          `json:"totalSend"`
	RoutesClimbed int          `json:"routesClimbed"`
	Duration      int          `json:"duration"` // minutes
	CreatedAt     time.Time    `json:"createdAt"`
	User          TimelineUser `json:"user"`
	Gym           TimelineGym  `json:"gym"`
}
