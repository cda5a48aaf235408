package repository

import (
	"context"
	"testing"

	"github.com/maxwellkiplagat/Movie-clubb/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_CreateAndConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	a := mustCreateUser(t, db, "ada")
	b := mustCreateUser(t, db, "ben")

	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: a.ID, FollowedID: b.ID}))

	var appErr *models.AppError
	err := repo.Create(ctx, &models.Follow{FollowerID: a.ID, FollowedID: b.ID})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
	assert.Equal(t, int64(1), count(t, db, &models.Follow{}))

	// The reverse edge is a distinct relationship.
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: b.ID, FollowedID: a.ID}))
	assert.Equal(t, int64(2), count(t, db, &models.Follow{}))
}

func TestFollowRepository_DeleteSemantics(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	a := mustCreateUser(t, db, "ada")
	b := mustCreateUser(t, db, "ben")
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: a.ID, FollowedID: b.ID}))

	require.NoError(t, repo.Delete(ctx, a.ID, b.ID))

	var appErr *models.AppError
	require.ErrorAs(t, repo.Delete(ctx, a.ID, b.ID), &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestFollowRepository_FollowersAndFollowing(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	a := mustCreateUser(t, db, "ada")
	b := mustCreateUser(t, db, "ben")
	c := mustCreateUser(t, db, "cleo")

	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: b.ID, FollowedID: a.ID}))
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: c.ID, FollowedID: a.ID}))
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: a.ID, FollowedID: c.ID}))

	followers, err := repo.Followers(ctx, a.ID)
	require.NoError(t, err)
	names := make([]string, 0, len(followers))
	for _, u := range followers {
		names = append(names, u.Username)
	}
	assert.ElementsMatch(t, []string{"ben", "cleo"}, names)

	following, err := repo.Following(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "cleo", following[0].Username)
}
