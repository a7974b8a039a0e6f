package postgres

import "time"

type UserModel struct {
	ID        int `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string `gorm:"uniqueIndex;not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	AvatarURL *string
	HeightCM  *int
	ReachCM   *int
	Bio       *string
}

func (UserModel) TableName() string {
	return "users"
}

type SessionModel struct {
	ID              int `gorm:"primaryKey"`
	UserID          int `gorm:"not null;index"`
	User            UserModel
	Location        string `gorm:"not null"`
	Title           string `gorm:"not null"`
	TotalSends      int    `gorm:"default:0"`
	RoutesClimbed   int    `gorm:"default:0"`
	DurationMinutes int    `gorm:"not null"`
	HardestSend     *string
	CreatedAt       time.Time    `gorm:"index"`
	Media           []MediaModel `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

func (SessionModel) TableName() string {
	return "sessions"
}

type MediaModel struct {
	ID              int    `gorm:"primaryKey"`
	SessionID       int    `gorm:"not null;index"`
	URL             string `gorm:"not null"`
	Type            string `gorm:"not null"`
	ThumbnailURL    *string
	DurationSeconds *int
	RouteGrade      *string
	RouteColor      *string
	OrderIndex      int `gorm:"default:0"`
	CreatedAt       time.Time
}

func (MediaModel) TableName() string {
	return "media"
}

type GymModel struct {
	ID        int    `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Location  string `gorm:"not null"`
	CreatedAt time.Time
}

func (GymModel) TableName() string {
	return "gyms"
}
