package entities

import (
	"errors"
	"time"
)

type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
)

type Media struct {
	ID              int
	SessionID       int
	URL             string
	Type            MediaType
	ThumbnailURL    *string
	DurationSeconds *int // videos only, nil for photos
	RouteGrade      *string
	RouteColor      *string
	OrderIndex      int
	CreatedAt       time.Time
}

func NewMedia(sessionID int, url string, mediaType MediaType, thumbnailURL *string, durationSeconds *int, routeGrade, routeColor *string, orderIndex int) *Media {
	return &Media{
		SessionID:       sessionID,
		URL:             url,
		Type:            mediaType,
		ThumbnailURL:    thumbnailURL,
		DurationSeconds: durationSeconds,
		RouteGrade:      routeGrade,
		RouteColor:      routeColor,
		OrderIndex:      orderIndex,
		CreatedAt:       time.Now(),
	}
}

func (m *Media) validate() error {
	if m.SessionID <= 0 {
		return errors.New("media must belong to a session")
	}
	if m.URL == "" {
		return errors.New("url must not be empty")
	}
	switch m.Type {
	case MediaTypePhoto:
		if m.DurationSeconds != nil {
			return errors.New("photos must not carry a duration")
		}
	case MediaTypeVideo:
		if m.DurationSeconds == nil || *m.DurationSeconds <= 0 {
			return errors.New("videos require a positive duration in seconds")
		}
	default:
		return errors.New("type must be photo or video")
	}
	if m.OrderIndex < 0 {
		return errors.New("order index must not be negative")
	}
	return nil
}
