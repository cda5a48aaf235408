// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered member of the movie club platform.
// The password hash and reset credential never leave the process; the
// views package builds every client-facing representation.
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"size:80;unique;not null" json:"username"`
	Email        string     `gorm:"size:120;unique;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Bio          string     `gorm:"type:text" json:"bio"`
	ResetToken   string     `gorm:"index" json:"-"`
	ResetExpiry  *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relationships
	Posts            []Post           `gorm:"foreignKey:UserID" json:"-"`
	Comments         []Comment        `gorm:"foreignKey:UserID" json:"-"`
	Likes            []Like           `gorm:"foreignKey:UserID" json:"-"`
	ClubMemberships  []ClubMember     `gorm:"foreignKey:UserID" json:"-"`
	ClubsCreated     []Club           `gorm:"foreignKey:CreatedByUserID" json:"-"`
	WatchlistEntries []WatchlistEntry `gorm:"foreignKey:UserID" json:"-"`
	Following        []Follow         `gorm:"foreignKey:FollowerID" json:"-"`
	Followers        []Follow         `gorm:"foreignKey:FollowedID" json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
