package models

import "time"

// Follow is a directed edge in the user graph: follower -> followed.
// Both roles point at the users table through separate foreign keys so the
// edge can be traversed in either direction.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follower_followed" json:"follower_id"`
	FollowedID uint      `gorm:"not null;uniqueIndex:idx_follower_followed" json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Follower *User `gorm:"foreignKey:FollowerID" json:"-"`
	Followed *User `gorm:"foreignKey:FollowedID" json:"-"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "follows"
}
