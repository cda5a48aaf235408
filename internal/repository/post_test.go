package repository

import (
	"context"
	"testing"
	"time"

	"github.com/maxwellkiplagat/Movie-clubb/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_ToggleLike(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := mustCreateUser(t, db, "liker")
	club := mustCreateClub(t, db, user.ID, "Likes")
	post := mustCreatePost(t, db, user.ID, club.ID)

	liked, n, err := repo.ToggleLike(ctx, user.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, n)

	// Toggling again removes the edge.
	liked, n, err = repo.ToggleLike(ctx, user.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 0, n)
	assert.Zero(t, count(t, db, &models.Like{}))

	var appErr *models.AppError
	_, _, err = repo.ToggleLike(ctx, user.ID, 9999)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostRepository_ToggleLikeCountsOnlyThatPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	a := mustCreateUser(t, db, "alpha")
	b := mustCreateUser(t, db, "beta")
	club := mustCreateClub(t, db, a.ID, "Counting")
	p1 := mustCreatePost(t, db, a.ID, club.ID)
	p2 := mustCreatePost(t, db, a.ID, club.ID)

	_, _, err := repo.ToggleLike(ctx, a.ID, p2.ID)
	require.NoError(t, err)

	liked, n, err := repo.ToggleLike(ctx, b.ID, p1.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, n)
}

func TestPostRepository_GetByIDPreloads(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := mustCreateUser(t, db, "author")
	club := mustCreateClub(t, db, user.ID, "Preloads")
	post := mustCreatePost(t, db, user.ID, club.ID)
	require.NoError(t, db.Create(&models.Comment{UserID: user.ID, PostID: post.ID, Content: "first"}).Error)
	require.NoError(t, db.Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error)

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Author)
	assert.Equal(t, "author", got.Author.Username)
	assert.Len(t, got.Comments, 1)
	assert.Len(t, got.Likes, 1)
}

func TestPostRepository_DeleteCascadesEngagement(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := mustCreateUser(t, db, "author")
	club := mustCreateClub(t, db, user.ID, "Cascade")
	post := mustCreatePost(t, db, user.ID, club.ID)
	keeper := mustCreatePost(t, db, user.ID, club.ID)
	require.NoError(t, db.Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error)
	require.NoError(t, db.Create(&models.Comment{UserID: user.ID, PostID: post.ID, Content: "gone"}).Error)
	require.NoError(t, db.Create(&models.Like{UserID: user.ID, PostID: keeper.ID}).Error)

	require.NoError(t, repo.Delete(ctx, post.ID))

	assert.Zero(t, count(t, db.Where("post_id = ?", post.ID), &models.Like{}))
	assert.Zero(t, count(t, db.Where("post_id = ?", post.ID), &models.Comment{}))
	assert.Equal(t, int64(1), count(t, db.Where("post_id = ?", keeper.ID), &models.Like{}))

	var appErr *models.AppError
	require.ErrorAs(t, repo.Delete(ctx, post.ID), &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostRepository_ListByClubNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := mustCreateUser(t, db, "author")
	club := mustCreateClub(t, db, user.ID, "Ordering")
	first := mustCreatePost(t, db, user.ID, club.ID)
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)
	second := mustCreatePost(t, db, user.ID, club.ID)

	posts, err := repo.ListByClub(ctx, club.ID)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
}

func TestPostRepository_ListLikedPosts(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := mustCreateUser(t, db, "author")
	fan := mustCreateUser(t, db, "fan")
	club := mustCreateClub(t, db, author.ID, "Favorites")
	liked := mustCreatePost(t, db, author.ID, club.ID)
	mustCreatePost(t, db, author.ID, club.ID)

	_, _, err := repo.ToggleLike(ctx, fan.ID, liked.ID)
	require.NoError(t, err)

	posts, err := repo.ListLikedPosts(ctx, fan.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, liked.ID, posts[0].ID)
}
