package models

import "time"

// Club represents a movie/TV discussion club.
// CreatedByUserID is optional: clubs survive their creator's deletion.
type Club struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:100;unique;not null" json:"name"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	Genre           string    `gorm:"size:50;not null" json:"genre"`
	CreatedByUserID *uint     `json:"created_by_user_id"`
	Creator         *User     `gorm:"foreignKey:CreatedByUserID" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relationships
	Members []ClubMember `gorm:"foreignKey:ClubID" json:"-"`
	Posts   []Post       `gorm:"foreignKey:ClubID" json:"-"`
}

// TableName specifies the table name for GORM.
func (Club) TableName() string {
	return "clubs"
}
