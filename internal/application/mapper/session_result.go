package mapper

import (
	"fmt"

	"cragfeed/internal/application/common"
	"cragfeed/internal/domain/entities"
)

// FormatDuration renders whole minutes as "45m" below one hour and
// "1h 56m" from one hour up. Remaining minutes always appear, so exactly
// one hour is "1h 0m".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

func NewMediaResultFromEntity(media *entities.Media) *common.MediaResult {
	return &common.MediaResult{
		ID:           media.ID,
		URL:          media.URL,
		Type:         string(media.Type),
		ThumbnailURL: media.ThumbnailURL,
		Duration:     media.DurationSeconds,
		RouteGrade:   media.RouteGrade,
		RouteColor:   media.RouteColor,
	}
}

func newMediaResults(media []entities.Media) []common.MediaResult {
	results := make([]common.MediaResult, 0, len(media))
	for i := range media {
		results = append(results, *NewMediaResultFromEntity(&media[i]))
	}
	return results
}

func NewSessionResultFromEntity(session *entities.Session) *common.SessionResult {
	result := &common.SessionResult{
		ID:              session.ID,
		UserID:          session.UserID,
		Location:        session.Location,
		Title:           session.Title,
		TotalSends:      session.TotalSends,
		RoutesClimbed:   session.RoutesClimbed,
		DurationMinutes: session.DurationMinutes,
		HardestSend:     session.HardestSend,
		CreatedAt:       session.CreatedAt,
		Media:           newMediaResults(session.Media),
	}
	if session.User != nil {
		result.User = NewPublicUserResultFromEntity(session.User)
	}
	return result
}

// NewFeedSessionFromEntity denormalizes a session for the feed. The
// repository guarantees User is populated and Media is ordered.
func NewFeedSessionFromEntity(session *entities.Session) *common.FeedSession {
	return &common.FeedSession{
		ID:        session.ID,
		User:      *NewPublicUserResultFromEntity(session.User),
		Location:  session.Location,
		CreatedAt: session.CreatedAt,
		Title:     session.Title,
		Stats: common.SessionStats{
			TotalSends:    session.TotalSends,
			RoutesClimbed: session.RoutesClimbed,
			Duration:      FormatDuration(session.DurationMinutes),
			HardestSend:   session.HardestSend,
		},
		Media: newMediaResults(session.Media),
	}
}

// NewTimelineSessionFromEntity reshapes a session into the legacy
// timeline layout. The session's free-text location stands in for the
// retired gym object.
func NewTimelineSessionFromEntity(session *entities.Session) *common.TimelineSession {
	return &common.TimelineSession{
		ID:            session.ID,
		Title:         session.Title,
		Description:   nil,
		TotalSend:     session.TotalSends,
		RoutesClimbed: session.RoutesClimbed,
		Duration:      session.DurationMinutes,
		CreatedAt:     session.CreatedAt,
		User: common.TimelineUser{
			ID:             session.User.ID,
			Username:       session.User.Username,
			ProfilePicture: session.User.AvatarURL,
		},
		Gym: common.TimelineGym{
			Name:     session.Location,
			Location: session.Location,
		},
	}
}
