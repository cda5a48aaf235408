package models

import "time"

// Post is a club discussion post about a movie. MovieTitle is free text on
// purpose: members post about titles that are not in the catalog yet.
type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	MovieTitle string    `gorm:"size:255;not null" json:"movie_title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	ClubID     uint      `gorm:"not null;index" json:"club_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Author   *User     `gorm:"foreignKey:UserID" json:"-"`
	Club     *Club     `gorm:"foreignKey:ClubID" json:"-"`
	Likes    []Like    `gorm:"foreignKey:PostID" json:"-"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"-"`
}

// TableName specifies the table name for GORM.
func (Post) TableName() string {
	return "posts"
}
