package model

import "time"

// Role is the access level assigned to a user.
type Role string

const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// ValidRole reports whether r is one of the assignable roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered member of the platform.
type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Username      string    `json:"username" gorm:"uniqueIndex;size:100;not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash  string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FirstName     string    `json:"first_name" gorm:"size:100;not null"`
	LastName      string    `json:"last_name" gorm:"size:100;not null"`
	BirthDate     string    `json:"birth_date" gorm:"size:10;not null"` // YYYY-MM-DD
	Gender        string    `json:"gender" gorm:"size:20;not null"`
	Role          Role      `json:"role" gorm:"type:varchar(20);not null;default:'user';index"`
	AvatarURL     string    `json:"avatar_url" gorm:"size:512"`
	Bio           string    `json:"bio" gorm:"type:text"`
	EcoPoints     int       `json:"eco_points" gorm:"default:0"`
	CarbonSavedKg float64   `json:"carbon_saved_kg" gorm:"default:0"`
	TreesPlanted  int       `json:"trees_planted" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PublicUser is the projection returned by user listings and search.
type PublicUser struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio"`
	EcoPoints int    `json:"eco_points"`
}

// Profile is the extended public view of a single user.
type Profile struct {
	ID            uint      `json:"id"`
	Username      string    `json:"username"`
	AvatarURL     string    `json:"avatar_url"`
	Bio           string    `json:"bio"`
	EcoPoints     int       `json:"eco_points"`
	CarbonSavedKg float64   `json:"carbon_saved_kg"`
	TreesPlanted  int       `json:"trees_planted"`
	Role          Role      `json:"role"`
	CreatedAt     time.Time `json:"created_at"`
}

// Public returns the listing projection of u.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
		Bio:       u.Bio,
		EcoPoints: u.EcoPoints,
	}
}

// PublicProfile returns the extended profile projection of u.
func (u *User) PublicProfile() Profile {
	return Profile{
		ID:            u.ID,
		Username:      u.Username,
		AvatarURL:     u.AvatarURL,
		Bio:           u.Bio,
		EcoPoints:     u.EcoPoints,
		CarbonSavedKg: u.CarbonSavedKg,
		TreesPlanted:  u.TreesPlanted,
		Role:          u.Role,
		CreatedAt:     u.CreatedAt,
	}
}
