package repository

import (
	"testing"

	"github.com/maxwellkiplagat/Movie-clubb/internal/cache"
	"github.com/maxwellkiplagat/Movie-clubb/internal/database"
	"github.com/maxwellkiplagat/Movie-clubb/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the full schema and no
// Redis behind the cache layer.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cache.SetClient(nil)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func mustCreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "irrelevant",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func mustCreateClub(t *testing.T, db *gorm.DB, creatorID uint, name string) *models.Club {
	t.Helper()
	c := &models.Club{
		Name:            name,
		Description:     "desc",
		Genre:           "Drama",
		CreatedByUserID: &creatorID,
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func mustCreatePost(t *testing.T, db *gorm.DB, userID, clubID uint) *models.Post {
	t.Helper()
	p := &models.Post{
		UserID:     userID,
		ClubID:     clubID,
		MovieTitle: "Stalker",
		Content:    "The zone changes everyone who enters.",
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
