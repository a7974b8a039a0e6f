package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatedMedia(t *testing.T) {
	duration := 30

	t.Run("photo", func(t *testing.T) {
		media := NewMedia(1, "https://cdn.example.com/a.jpg", MediaTypePhoto, nil, nil, nil, nil, 0)
		_, err := NewValidatedMedia(media)
		require.NoError(t, err)
	})

	t.Run("video with duration", func(t *testing.T) {
		media := NewMedia(1, "https://cdn.example.com/a.mp4", MediaTypeVideo, nil, &duration, nil, nil, 0)
		_, err := NewValidatedMedia(media)
		require.NoError(t, err)
	})

	t.Run("photo must not carry a duration", func(t *testing.T) {
		media := NewMedia(1, "https://cdn.example.com/a.jpg", MediaTypePhoto, nil, &duration, nil, nil, 0)
		_, err := NewValidatedMedia(media)
		assert.Error(t, err)
	})

	t.Run("video requires a duration", func(t *testing.T) {
		media := NewMedia(1, "https://cdn.example.com/a.mp4", MediaTypeVideo, nil, nil, nil, nil, 0)
		_, err := NewValidatedMedia(media)
		assert.Error(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		media := NewMedia(1, "https://cdn.example.com/a.gif", MediaType("gif"), nil, nil, nil, nil, 0)
		_, err := NewValidatedMedia(media)
		assert.Error(t, err)
	})

	t.Run("rejects negative order index", func(t *testing.T) {
		media := NewMedia(1, "https://cdn.example.com/a.jpg", MediaTypePhoto, nil, nil, nil, nil, -1)
		_, err := NewValidatedMedia(media)
		assert.Error(t, err)
	})
}

func TestNewValidatedSession(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		session := NewSession(1, "Movement Santa Clara", "Morning burn", 5, 8, 90, nil)
		_, err := NewValidatedSession(session)
		require.NoError(t, err)
	})

	t.Run("duration must be at least one minute", func(t *testing.T) {
		session := NewSession(1, "Movement Santa Clara", "Morning burn", 5, 8, 0, nil)
		_, err := NewValidatedSession(session)
		assert.Error(t, err)
	})

	t.Run("requires an owner", func(t *testing.T) {
		session := NewSession(0, "Movement Santa Clara", "Morning burn", 5, 8, 90, nil)
		_, err := NewValidatedSession(session)
		assert.Error(t, err)
	})
}
