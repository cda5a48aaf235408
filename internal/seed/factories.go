// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/maxwellkiplagat/Movie-clubb/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Bio:      gofakeit.Sentence(10),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.PasswordHash = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.PasswordHash = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateMovie constructs and persists a sample catalog movie.
func (f *Factory) CreateMovie(overrides ...func(*models.Movie)) (*models.Movie, error) {
	movie := &models.Movie{
		Title:       gofakeit.MovieName(),
		Genre:       gofakeit.MovieGenre(),
		ReleaseYear: gofakeit.Number(1960, 2025),
		Director:    gofakeit.Name(),
		Description: gofakeit.Paragraph(1, 2, 8, " "),
		PosterURL:   fmt.Sprintf("https://picsum.photos/seed/%s/300/450", gofakeit.UUID()),
	}

	for _, override := range overrides {
		override(movie)
	}

	if err := f.db.Create(movie).Error; err != nil {
		return nil, err
	}
	return movie, nil
}

// CreateClub constructs and persists a sample club created by the given user.
func (f *Factory) CreateClub(creator *models.User, overrides ...func(*models.Club)) (*models.Club, error) {
	club := &models.Club{
		Name:        fmt.Sprintf("%s %s Club", gofakeit.AdjectiveDescriptive(), gofakeit.MovieGenre()),
		Description: gofakeit.Sentence(12),
		Genre:       gofakeit.MovieGenre(),
	}
	if creator != nil {
		club.CreatedByUserID = &creator.ID
	}

	for _, override := range overrides {
		override(club)
	}

	if err := f.db.Create(club).Error; err != nil {
		return nil, err
	}
	return club, nil
}

// AddMember persists a club membership for the given user.
func (f *Factory) AddMember(user *models.User, club *models.Club) error {
	member := &models.ClubMember{
		UserID: user.ID,
		ClubID: club.ID,
	}
	return f.db.Create(member).Error
}

// CreatePost constructs and persists a sample post in the given club.
func (f *Factory) CreatePost(user *models.User, club *models.Club, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		UserID:     user.ID,
		ClubID:     club.ID,
		MovieTitle: gofakeit.MovieName(),
		Content:    gofakeit.Paragraph(1, 3, 6, "\n"),
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	// #nosec G404: acceptable for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a sample comment on the provided
// post authored by the provided user.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(8),
		UserID:  user.ID,
		PostID:  post.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from `user` on `post`.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := &models.Like{
		UserID: user.ID,
		PostID: post.ID,
	}
	return f.db.Create(like).Error
}

// CreateFollow persists a directed follow edge between two users.
func (f *Factory) CreateFollow(follower, followed *models.User) error {
	follow := &models.Follow{
		FollowerID: follower.ID,
		FollowedID: followed.ID,
	}
	return f.db.Create(follow).Error
}

// CreateWatchlistEntry persists a watchlist entry for the given user and movie.
func (f *Factory) CreateWatchlistEntry(user *models.User, movie *models.Movie, status models.WatchlistStatus) (*models.WatchlistEntry, error) {
	entry := &models.WatchlistEntry{
		UserID:     user.ID,
		MovieID:    movie.ID,
		MovieTitle: movie.Title,
		Genre:      movie.Genre,
		Status:     status,
	}
	if err := f.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}
