package model

import "time"

// Challenge represents an eco challenge that users can join. Challenges are
// created and maintained by admins only.
type Challenge struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"size:255;not null"`
	Description  string    `json:"description" gorm:"type:text"`
	PointsReward int       `json:"points_reward" gorm:"not null"`
	CO2SavingKg  float64   `json:"co2_saving_kg" gorm:"default:0"`
	DurationDays int       `json:"duration_days" gorm:"not null"`
	ImageURL     string    `json:"image_url" gorm:"size:512"`
	Category     string    `json:"category" gorm:"size:100;default:'Week'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EnrollmentStatus is the state of a user's participation in a challenge.
type EnrollmentStatus string

const (
	EnrollmentStatusInProgress EnrollmentStatus = "in_progress"
	EnrollmentStatusCompleted  EnrollmentStatus = "completed"
)

// UserChallenge is a user's enrollment in a challenge. The composite unique
// index makes the join operation atomic: a concurrent double join surfaces
// as a duplicate-key error instead of a second row.
type UserChallenge struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	UserID      uint             `json:"user_id" gorm:"not null;uniqueIndex:idx_user_challenge"`
	ChallengeID uint             `json:"challenge_id" gorm:"not null;uniqueIndex:idx_user_challenge"`
	Progress    int              `json:"progress" gorm:"default:0"` // 0-100
	Status      EnrollmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'in_progress';index"`
	JoinedAt    time.Time        `json:"joined_at" gorm:"autoCreateTime"`
	CompletedAt *time.Time       `json:"completed_at"`
}

// EnrollmentDetail is an enrollment joined with the challenge it belongs to,
// as returned by the "my challenges" listing.
type EnrollmentDetail struct {
	UserChallenge
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	PointsReward int     `json:"points_reward"`
	CO2SavingKg  float64 `json:"co2_saving_kg"`
	DurationDays int     `json:"duration_days"`
	Category     string  `json:"category"`
}
