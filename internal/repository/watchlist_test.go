package repository

import (
	"context"
	"testing"

	"github.com/maxwellkiplagat/Movie-clubb/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func mustCreateMovie(t *testing.T, db *gorm.DB, title string) *models.Movie {
	t.Helper()
	m := &models.Movie{Title: title, Genre: "Sci-Fi", ReleaseYear: 1979}
	require.NoError(t, db.Create(m).Error)
	return m
}

func TestWatchlistRepository_AddUpsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewWatchlistRepository(db)
	ctx := context.Background()

	user := mustCreateUser(t, db, "watcher")
	movie := mustCreateMovie(t, db, "Alien")

	entry := &models.WatchlistEntry{
		UserID:     user.ID,
		MovieID:    movie.ID,
		MovieTitle: movie.Title,
		Genre:      movie.Genre,
		Status:     models.WatchlistStatusPending,
	}
	created, err := repo.Add(ctx, entry)
	require.NoError(t, err)
	assert.True(t, created)

	// Same pair with a new status updates in place.
	update := &models.WatchlistEntry{
		UserID:  user.ID,
		MovieID: movie.ID,
		Status:  models.WatchlistStatusWatched,
	}
	created, err = repo.Add(ctx, update)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, entry.ID, update.ID)
	assert.Equal(t, int64(1), count(t, db, &models.WatchlistEntry{}))

	// Same pair with the same status is a conflict.
	var appErr *models.AppError
	_, err = repo.Add(ctx, &models.WatchlistEntry{
		UserID:  user.ID,
		MovieID: movie.ID,
		Status:  models.WatchlistStatusWatched,
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
	assert.Equal(t, int64(1), count(t, db, &models.WatchlistEntry{}))
}

func TestWatchlistRepository_UpdateStatusAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewWatchlistRepository(db)
	ctx := context.Background()

	user := mustCreateUser(t, db, "watcher")
	movie := mustCreateMovie(t, db, "Solaris")
	entry := &models.WatchlistEntry{
		UserID: user.ID, MovieID: movie.ID,
		MovieTitle: movie.Title, Status: models.WatchlistStatusPending,
	}
	_, err := repo.Add(ctx, entry)
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, entry.ID, models.WatchlistStatusLiked)
	require.NoError(t, err)
	assert.Equal(t, models.WatchlistStatusLiked, updated.Status)

	var appErr *models.AppError
	_, err = repo.UpdateStatus(ctx, 9999, models.WatchlistStatusLiked)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)

	require.NoError(t, repo.Delete(ctx, entry.ID))
	require.ErrorAs(t, repo.Delete(ctx, entry.ID), &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestWatchlistRepository_ListByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewWatchlistRepository(db)
	ctx := context.Background()

	watcher := mustCreateUser(t, db, "watcher")
	other := mustCreateUser(t, db, "other")
	m1 := mustCreateMovie(t, db, "Alien")
	m2 := mustCreateMovie(t, db, "Aliens")

	for _, e := range []*models.WatchlistEntry{
		{UserID: watcher.ID, MovieID: m1.ID, MovieTitle: m1.Title, Status: models.WatchlistStatusPending},
		{UserID: other.ID, MovieID: m1.ID, MovieTitle: m1.Title, Status: models.WatchlistStatusWatched},
		{UserID: watcher.ID, MovieID: m2.ID, MovieTitle: m2.Title, Status: models.WatchlistStatusLiked},
	} {
		_, err := repo.Add(ctx, e)
		require.NoError(t, err)
	}

	entries, err := repo.ListByUser(ctx, watcher.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, watcher.ID, e.UserID)
	}
}
