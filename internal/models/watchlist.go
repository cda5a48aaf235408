package models

import "time"

// WatchlistStatus is the viewing state of a watchlist entry.
type WatchlistStatus string

const (
	// WatchlistStatusPending means the user intends to watch the movie.
	WatchlistStatusPending WatchlistStatus = "pending"
	// WatchlistStatusWatched means the user has watched the movie.
	WatchlistStatusWatched WatchlistStatus = "watched"
	// WatchlistStatusLiked means the user watched and liked the movie.
	WatchlistStatusLiked WatchlistStatus = "liked"
)

// ValidWatchlistStatus reports whether s is one of the known statuses.
func ValidWatchlistStatus(s WatchlistStatus) bool {
	switch s {
	case WatchlistStatusPending, WatchlistStatusWatched, WatchlistStatusLiked:
		return true
	}
	return false
}

// WatchlistEntry links a user to a catalog movie with a viewing status.
// MovieTitle and Genre are denormalized so list views render without a join.
type WatchlistEntry struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	UserID     uint            `gorm:"not null;uniqueIndex:idx_user_movie" json:"user_id"`
	MovieID    uint            `gorm:"not null;uniqueIndex:idx_user_movie" json:"movie_id"`
	MovieTitle string          `gorm:"size:255;not null" json:"movie_title"`
	Genre      string          `gorm:"size:100" json:"genre"`
	Status     WatchlistStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	// Relationships
	User  *User  `gorm:"foreignKey:UserID" json:"-"`
	Movie *Movie `gorm:"foreignKey:MovieID" json:"-"`
}

// TableName specifies the table name for GORM.
func (WatchlistEntry) TableName() string {
	return "watchlist_entries"
}
