// Package views builds the flat, cycle-free representations that leave the
// process. The underlying entity graph is cyclic (User->Post->Author->Post,
// Club->Member->Club, Follow->User->Follow), so nothing here ever embeds a
// related entity whole: every relation is resolved into a minimal sub-shape
// of the 1-3 fields clients actually consume. Each projector is a plain
// function over already-loaded models; none of them calls back into a
// projector that could re-enter it, which bounds projection depth at two.
package views

import (
	"time"

	"github.com/maxwellkiplagat/Movie-clubb/internal/models"
)

// isoTime renders a timestamp as RFC 3339, or nil for the zero value.
func isoTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// ClubSummary is the minimal club sub-shape embedded in user views.
type ClubSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
}

// UserView is the client-facing representation of a user. The password hash
// and reset credential are omitted unconditionally: they are not fields here.
type UserView struct {
	ID              uint          `json:"id"`
	Username        string        `json:"username"`
	Email           string        `json:"email"`
	Bio             string        `json:"bio,omitempty"`
	CreatedAt       *string       `json:"created_at"`
	UpdatedAt       *string       `json:"updated_at"`
	ClubMemberships []ClubSummary `json:"club_memberships"`
	ClubsCreated    []ClubSummary `json:"clubs_created"`
	FollowersCount  int           `json:"followers_count"`
	FollowingCount  int           `json:"following_count"`
}

// User projects a user with its loaded membership and creation relations.
func User(u *models.User) UserView {
	memberships := make([]ClubSummary, 0, len(u.ClubMemberships))
	for _, cm := range u.ClubMemberships {
		if cm.Club == nil {
			continue
		}
		memberships = append(memberships, clubSummary(cm.Club))
	}

	created := make([]ClubSummary, 0, len(u.ClubsCreated))
	for i := range u.ClubsCreated {
		created = append(created, clubSummary(&u.ClubsCreated[i]))
	}

	return UserView{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		Bio:             u.Bio,
		CreatedAt:       isoTime(u.CreatedAt),
		UpdatedAt:       isoTime(u.UpdatedAt),
		ClubMemberships: memberships,
		ClubsCreated:    created,
		FollowersCount:  len(u.Followers),
		FollowingCount:  len(u.Following),
	}
}

func clubSummary(c *models.Club) ClubSummary {
	return ClubSummary{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Genre:       c.Genre,
	}
}

// ClubView is the client-facing representation of a club. The creator is
// flattened to id + username; members and posts stay behind their own routes.
type ClubView struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Genre           string  `json:"genre"`
	CreatedByUserID *uint   `json:"created_by_user_id"`
	CreatorUsername *string `json:"creator_username"`
	MemberCount     int     `json:"member_count"`
	CreatedAt       *string `json:"created_at"`
	UpdatedAt       *string `json:"updated_at"`
}

// Club projects a club with its loaded members and creator.
// MemberCount is the live collection size at the instant of projection.
func Club(c *models.Club) ClubView {
	view := ClubView{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		Genre:           c.Genre,
		CreatedByUserID: c.CreatedByUserID,
		MemberCount:     len(c.Members),
		CreatedAt:       isoTime(c.CreatedAt),
		UpdatedAt:       isoTime(c.UpdatedAt),
	}
	if c.Creator != nil {
		view.CreatorUsername = &c.Creator.Username
	}
	return view
}

// Clubs projects a slice of clubs.
func Clubs(cs []models.Club) []ClubView {
	out := make([]ClubView, 0, len(cs))
	for i := range cs {
		out = append(out, Club(&cs[i]))
	}
	return out
}

// CommentView is the fully-flattened comment sub-shape.
type CommentView struct {
	ID        uint    `json:"id"`
	Content   string  `json:"content"`
	UserID    uint    `json:"user_id"`
	Username  string  `json:"username"`
	PostID    uint    `json:"post_id"`
	CreatedAt *string `json:"created_at"`
}

// Comment projects a comment with its loaded author.
func Comment(cm *models.Comment) CommentView {
	username := "Unknown"
	if cm.User != nil {
		username = cm.User.Username
	}
	return CommentView{
		ID:        cm.ID,
		Content:   cm.Content,
		UserID:    cm.UserID,
		Username:  username,
		PostID:    cm.PostID,
		CreatedAt: isoTime(cm.CreatedAt),
	}
}

// Comments projects a slice of comments.
func Comments(cms []models.Comment) []CommentView {
	out := make([]CommentView, 0, len(cms))
	for i := range cms {
		out = append(out, Comment(&cms[i]))
	}
	return out
}

// PostView is the client-facing representation of a post. The author relation
// is resolved to author_id + author_username, never embedded.
type PostView struct {
	ID             uint          `json:"id"`
	MovieTitle     string        `json:"movie_title"`
	Content        string        `json:"content"`
	UserID         uint          `json:"user_id"`
	ClubID         uint          `json:"club_id"`
	AuthorID       *uint         `json:"author_id"`
	AuthorUsername string        `json:"author_username"`
	LikesCount     int           `json:"likes_count"`
	Comments       []CommentView `json:"comments"`
	CreatedAt      *string       `json:"created_at"`
	UpdatedAt      *string       `json:"updated_at"`
}

// Post projects a post with its loaded author, likes, and comments.
// LikesCount equals len(post.Likes) at the instant of projection.
func Post(p *models.Post) PostView {
	view := PostView{
		ID:             p.ID,
		MovieTitle:     p.MovieTitle,
		Content:        p.Content,
		UserID:         p.UserID,
		ClubID:         p.ClubID,
		AuthorUsername: "Unknown",
		LikesCount:     len(p.Likes),
		Comments:       Comments(p.Comments),
		CreatedAt:      isoTime(p.CreatedAt),
		UpdatedAt:      isoTime(p.UpdatedAt),
	}
	if p.Author != nil {
		view.AuthorID = &p.Author.ID
		view.AuthorUsername = p.Author.Username
	}
	return view
}

// Posts projects a slice of posts.
func Posts(ps []models.Post) []PostView {
	out := make([]PostView, 0, len(ps))
	for i := range ps {
		out = append(out, Post(&ps[i]))
	}
	return out
}

// LikeView is the flattened like edge.
type LikeView struct {
	ID        uint    `json:"id"`
	UserID    uint    `json:"user_id"`
	Username  string  `json:"username"`
	PostID    uint    `json:"post_id"`
	CreatedAt *string `json:"created_at"`
}

// Like projects a like edge with its loaded user.
func Like(l *models.Like) LikeView {
	username := "Unknown"
	if l.User != nil {
		username = l.User.Username
	}
	return LikeView{
		ID:        l.ID,
		UserID:    l.UserID,
		Username:  username,
		PostID:    l.PostID,
		CreatedAt: isoTime(l.CreatedAt),
	}
}

// Likes projects a slice of like edges.
func Likes(ls []models.Like) []LikeView {
	out := make([]LikeView, 0, len(ls))
	for i := range ls {
		out = append(out, Like(&ls[i]))
	}
	return out
}

// FollowView is the flattened follow edge with both endpoint usernames.
type FollowView struct {
	ID               uint    `json:"id"`
	FollowerID       uint    `json:"follower_id"`
	FollowerUsername string  `json:"follower_username"`
	FollowedID       uint    `json:"followed_id"`
	FollowedUsername string  `json:"followed_username"`
	CreatedAt        *string `json:"created_at"`
}

// Follow projects a follow edge with its loaded endpoints.
func Follow(f *models.Follow) FollowView {
	view := FollowView{
		ID:         f.ID,
		FollowerID: f.FollowerID,
		FollowedID: f.FollowedID,
		CreatedAt:  isoTime(f.CreatedAt),
	}
	if f.Follower != nil {
		view.FollowerUsername = f.Follower.Username
	}
	if f.Followed != nil {
		view.FollowedUsername = f.Followed.Username
	}
	return view
}

// UserSummary is the minimal user sub-shape for follower/following lists.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// UserSummaries projects a slice of users down to id + username.
func UserSummaries(us []models.User) []UserSummary {
	out := make([]UserSummary, 0, len(us))
	for _, u := range us {
		out = append(out, UserSummary{ID: u.ID, Username: u.Username})
	}
	return out
}

// MovieView is the client-facing representation of a catalog movie.
type MovieView struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	ReleaseYear int    `json:"release_year"`
	Director    string `json:"director,omitempty"`
	Description string `json:"description,omitempty"`
	PosterURL   string `json:"poster_url,omitempty"`
}

// Movie projects a catalog movie.
func Movie(m *models.Movie) MovieView {
	return MovieView{
		ID:          m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		ReleaseYear: m.ReleaseYear,
		Director:    m.Director,
		Description: m.Description,
		PosterURL:   m.PosterURL,
	}
}

// Movies projects a slice of movies.
func Movies(ms []models.Movie) []MovieView {
	out := make([]MovieView, 0, len(ms))
	for i := range ms {
		out = append(out, Movie(&ms[i]))
	}
	return out
}

// WatchlistView is the client-facing representation of a watchlist entry.
type WatchlistView struct {
	ID         uint    `json:"id"`
	UserID     uint    `json:"user_id"`
	MovieID    uint    `json:"movie_id"`
	MovieTitle string  `json:"movie_title"`
	Genre      string  `json:"genre"`
	Status     string  `json:"status"`
	CreatedAt  *string `json:"created_at"`
	UpdatedAt  *string `json:"updated_at"`
}

// Watchlist projects a watchlist entry.
func Watchlist(w *models.WatchlistEntry) WatchlistView {
	return WatchlistView{
		ID:         w.ID,
		UserID:     w.UserID,
		MovieID:    w.MovieID,
		MovieTitle: w.MovieTitle,
		Genre:      w.Genre,
		Status:     string(w.Status),
		CreatedAt:  isoTime(w.CreatedAt),
		UpdatedAt:  isoTime(w.UpdatedAt),
	}
}

// Watchlists projects a slice of watchlist entries.
func Watchlists(ws []models.WatchlistEntry) []WatchlistView {
	out := make([]WatchlistView, 0, len(ws))
	for i := range ws {
		out = append(out, Watchlist(&ws[i]))
	}
	return out
}
