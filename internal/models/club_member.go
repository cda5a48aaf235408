package models

import "time"

// ClubMember is the join edge between a user and a club. Its existence is
// the membership fact; the unique (user_id, club_id) pair makes a duplicate
// join attempt surface as a constraint violation rather than a second row.
type ClubMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_club" json:"user_id"`
	ClubID    uint      `gorm:"not null;uniqueIndex:idx_user_club" json:"club_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"-"`
	Club *Club `gorm:"foreignKey:ClubID" json:"-"`
}

// TableName specifies the table name for GORM.
func (ClubMember) TableName() string {
	return "club_members"
}
