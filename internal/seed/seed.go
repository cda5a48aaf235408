package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/maxwellkiplagat/Movie-clubb/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumMovies   int
	NumClubs    int
	NumPosts    int
	ShouldClean bool
	SkipBcrypt  bool
	MaxDays     int
}

// Seed populates the database with demo data: users, a movie catalog, clubs
// with members and posts, plus a sprinkling of likes, comments, follows, and
// watchlist entries.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users, %d movies, %d clubs, %d posts...",
		opts.NumUsers, opts.NumMovies, opts.NumClubs, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db, opts)
	// #nosec G404: acceptable for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		return fmt.Errorf("no users could be created")
	}
	log.Printf("%d users created", len(users))

	movies := make([]*models.Movie, 0, opts.NumMovies)
	for i := 0; i < opts.NumMovies; i++ {
		movie, err := f.CreateMovie()
		if err != nil {
			return fmt.Errorf("failed to create movie: %w", err)
		}
		movies = append(movies, movie)
	}
	log.Printf("%d movies created", len(movies))

	clubs := make([]*models.Club, 0, opts.NumClubs)
	for i := 0; i < opts.NumClubs; i++ {
		creator := users[r.Intn(len(users))]
		club, err := f.CreateClub(creator)
		if err != nil {
			return fmt.Errorf("failed to create club: %w", err)
		}
		clubs = append(clubs, club)

		// Creator joins own club plus a few random members.
		_ = f.AddMember(creator, club)
		for j := 0; j < r.Intn(5); j++ {
			_ = f.AddMember(users[r.Intn(len(users))], club)
		}
	}
	log.Printf("%d clubs created", len(clubs))

	posts := make([]*models.Post, 0, opts.NumPosts)
	if len(clubs) > 0 {
		for i := 0; i < opts.NumPosts; i++ {
			user := users[r.Intn(len(users))]
			club := clubs[r.Intn(len(clubs))]
			post, err := f.CreatePost(user, club)
			if err != nil {
				return fmt.Errorf("failed to create post: %w", err)
			}
			posts = append(posts, post)
		}
	}
	log.Printf("%d posts created", len(posts))

	for _, post := range posts {
		for j := 0; j < r.Intn(4); j++ {
			// Unique index on (user, post) silently skips duplicate likes.
			_ = f.CreateLike(users[r.Intn(len(users))], post)
		}
		if r.Float32() < 0.5 {
			_, _ = f.CreateComment(users[r.Intn(len(users))], post)
		}
	}

	for _, user := range users {
		if len(users) < 2 {
			break
		}
		other := users[r.Intn(len(users))]
		if other.ID != user.ID {
			_ = f.CreateFollow(user, other)
		}
		if len(movies) > 0 && r.Float32() < 0.6 {
			statuses := []models.WatchlistStatus{models.WatchlistStatusPending, models.WatchlistStatusWatched, models.WatchlistStatusLiked}
			_, _ = f.CreateWatchlistEntry(user, movies[r.Intn(len(movies))], statuses[r.Intn(len(statuses))])
		}
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE likes, comments, posts, club_members, clubs, watchlist_entries, follows, movies, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
