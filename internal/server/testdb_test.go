package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/maxwellkiplagat/Movie-clubb/internal/cache"
	"github.com/maxwellkiplagat/Movie-clubb/internal/config"
	"github.com/maxwellkiplagat/Movie-clubb/internal/database"
	"github.com/maxwellkiplagat/Movie-clubb/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// newTestServer builds a Server over an in-memory database with caching and
// Redis disabled.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	cache.SetClient(nil)
	db := setupTestDB(t)

	cfg := &config.Config{
		JWTSecret: "test-secret-for-handler-tests-0123456789",
		Port:      "0",
		Env:       "test",
	}
	s, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)
	return s, db
}

// newTestApp mounts the handlers behind a stub auth middleware that
// authenticates every request as the given user.
func newTestApp(s *Server, userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	mountRoutes(app, s)
	return app
}

// mountRoutes registers the API surface without the JWT middleware so tests
// can drive requests as an arbitrary user.
func mountRoutes(app *fiber.App, s *Server) {
	api := app.Group("/api")
	api.Get("/check_session", s.CheckSession)

	users := api.Group("/users")
	users.Get("/:id/clubs", s.GetUserClubs)
	users.Get("/:id/liked_posts", s.GetLikedPosts)
	users.Get("/:id/followers", s.GetFollowers)
	users.Get("/:id/following", s.GetFollowing)
	users.Get("/:id/watchlist", s.GetWatchlist)
	users.Post("/:id/watchlist", s.AddToWatchlist)
	users.Patch("/:id/watchlist/:itemId", s.UpdateWatchlistItem)
	users.Delete("/:id/watchlist/:itemId", s.RemoveFromWatchlist)
	users.Post("/:id/follow", s.FollowUser)
	users.Delete("/:id/follow", s.UnfollowUser)
	users.Get("/:id", s.GetUser)

	clubs := api.Group("/clubs")
	clubs.Get("/", s.GetClubs)
	clubs.Post("/", s.CreateClub)
	clubs.Get("/:id/posts", s.GetClubPosts)
	clubs.Post("/:id/join", s.JoinClub)
	clubs.Delete("/:id/leave", s.LeaveClub)
	clubs.Get("/:id", s.GetClub)
	clubs.Delete("/:id", s.DeleteClub)

	posts := api.Group("/posts")
	posts.Post("/", s.CreatePost)
	posts.Post("/:id/like", s.ToggleLike)
	posts.Get("/:id/likes", s.GetPostLikes)
	posts.Post("/:id/comments", s.CreateComment)
	posts.Get("/:id/comments", s.GetPostComments)
	posts.Get("/:id", s.GetPost)
	posts.Delete("/:id", s.DeletePost)

	api.Delete("/comments/:id", s.DeleteComment)

	movies := api.Group("/movies")
	movies.Get("/", s.GetMovies)
	movies.Post("/", s.CreateMovie)
	movies.Get("/:id", s.GetMovie)
}

// createTestUser inserts a user with a bcrypt password hash.
func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestClub(t *testing.T, db *gorm.DB, creatorID uint, name string) *models.Club {
	t.Helper()
	club := &models.Club{
		Name:            name,
		Description:     "A club for " + name,
		Genre:           "Drama",
		CreatedByUserID: &creatorID,
	}
	require.NoError(t, db.Create(club).Error)
	return club
}

func createTestPost(t *testing.T, db *gorm.DB, userID, clubID uint) *models.Post {
	t.Helper()
	post := &models.Post{
		UserID:     userID,
		ClubID:     clubID,
		MovieTitle: "Heat",
		Content:    "The diner scene alone is worth the runtime.",
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func createTestMovie(t *testing.T, db *gorm.DB, title string) *models.Movie {
	t.Helper()
	movie := &models.Movie{
		Title:       title,
		Genre:       "Thriller",
		ReleaseYear: 1995,
	}
	require.NoError(t, db.Create(movie).Error)
	return movie
}

// doJSON issues a request with a JSON body and decodes the JSON response.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

// doJSONList is doJSON for endpoints returning a JSON array.
func doJSONList(t *testing.T, app *fiber.App, method, path string) (int, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded []map[string]any
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}
