package common

import "time"

type MediaResult struct {
	ID           int     `json:"id"`
	URL          string  `json:"url"`
	Type         string  `json:"type"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Duration     *int    `json:"duration"` // seconds, videos only
	RouteGrade   *string `json:"routeGrade,omitempty"`
	RouteColor   *string `json:"routeColor,omitempty"`
}

type SessionStats struct {
	TotalSends    int     `json:"totalSends"`
	RoutesClimbed int     `json:"routesClimbed"`
	Duration      string  `json:"duration"` // "45m" or "1h 56m"
	HardestSend   *string `json:"hardestSend,omitempty"`
}

// FeedSession is one feed entry: the session denormalized with its
// owner's public fields and its media in display order.
type FeedSession struct {
	ID        int              `json:"id"`
	User      PublicUserResult `json:"user"`
	Location  string           `json:"location"`
	CreatedAt time.Time        `json:"createdAt"`
	Title     string           `json:"title"`
	Stats     SessionStats     `json:"stats"`
	Media     []MediaResult    `json:"media"`
}

type Pagination struct {
	Page       int  `json:"page"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

type FeedResult struct {
	Sessions   []FeedSession `json:"sessions"`
	Pagination Pagination    `json:"pagination"`
}

// SessionResult is the detail / mutation response shape.
type SessionResult struct {
	ID              int               `json:"id"`
	UserID          int               `json:"userId"`
	Location        string            `json:"location"`
	Title           string            `json:"title"`
	TotalSends      int               `json:"totalSends"`
	RoutesClimbed   int               `json:"routesClimbed"`
	DurationMinutes int               `json:"durationMinutes"`
	HardestSend     *string           `json:"hardestSend,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	User            *PublicUserResult `json:"user,omitempty"`
	Media           []MediaResult     `json:"media"`
}
