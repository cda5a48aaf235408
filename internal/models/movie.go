package models

import "time"

// Movie is a standalone catalog entity. Posts reference movies by free-text
// title; watchlist entries carry a real foreign key to this table.
type Movie struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Genre       string    `gorm:"size:100;not null" json:"genre"`
	ReleaseYear int       `gorm:"not null" json:"release_year"`
	Director    string    `gorm:"size:255" json:"director"`
	Description string    `gorm:"type:text" json:"description"`
	PosterURL   string    `gorm:"size:500" json:"poster_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	WatchlistEntries []WatchlistEntry `gorm:"foreignKey:MovieID" json:"-"`
}

// TableName specifies the table name for GORM.
func (Movie) TableName() string {
	return "movies"
}
