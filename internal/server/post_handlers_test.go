package server

import (
	"net/http"
	"testing"

	"github.com/maxwellkiplagat/Movie-clubb/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	s, db := newTestServer(t)
	user := createTestUser(t, db, "author")
	createTestClub(t, db, user.ID, "Westerns")

	app := newTestApp(s, user.ID)

	status, body := doJSON(t, app, http.MethodPost, "/api/posts/", map[string]any{
		"club_id":     1,
		"movie_title": "Unforgiven",
		"content":     "Eastwood dismantling his own myth.",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Unforgiven", body["movie_title"])
	assert.Equal(t, "author", body["author_username"])
	assert.Equal(t, float64(0), body["likes_count"])

	// Missing content
	status, _ = doJSON(t, app, http.MethodPost, "/api/posts/", map[string]any{
		"club_id": 1, "movie_title": "Unforgiven",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	// Unknown club
	status, _ = doJSON(t, app, http.MethodPost, "/api/posts/", map[string]any{
		"club_id": 99, "movie_title": "Unforgiven", "content": "text",
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestToggleLike_RoundTrip(t *testing.T) {
	s, db := newTestServer(t)
	author := createTestUser(t, db, "author")
	liker := createTestUser(t, db, "liker")
	club := createTestClub(t, db, author.ID, "Heist Club")
	createTestPost(t, db, author.ID, club.ID)

	app := newTestApp(s, liker.ID)

	// First toggle creates the like.
	status, body := doJSON(t, app, http.MethodPost, "/api/posts/1/like", nil)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["liked"])
	assert.Equal(t, float64(1), body["likes_count"])

	// Second toggle removes it.
	status, body = doJSON(t, app, http.MethodPost, "/api/posts/1/like", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["liked"])
	assert.Equal(t, float64(0), body["likes_count"])

	// The edge is gone, not orphaned.
	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.Zero(t, count)

	// Unknown post
	status, _ = doJSON(t, app, http.MethodPost, "/api/posts/99/like", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeletePost_OwnerOnlyCascade(t *testing.T) {
	s, db := newTestServer(t)
	author := createTestUser(t, db, "author")
	other := createTestUser(t, db, "other")
	club := createTestClub(t, db, author.ID, "Slashers")
	post := createTestPost(t, db, author.ID, club.ID)
	require.NoError(t, db.Create(&models.Like{UserID: other.ID, PostID: post.ID}).Error)
	require.NoError(t, db.Create(&models.Comment{UserID: other.ID, PostID: post.ID, Content: "scary"}).Error)

	otherApp := newTestApp(s, other.ID)
	status, _ := doJSON(t, otherApp, http.MethodDelete, "/api/posts/1", nil)
	assert.Equal(t, http.StatusForbidden, status)

	authorApp := newTestApp(s, author.ID)
	status, _ = doJSON(t, authorApp, http.MethodDelete, "/api/posts/1", nil)
	require.Equal(t, http.StatusOK, status)

	var likes, comments int64
	require.NoError(t, db.Model(&models.Like{}).Count(&likes).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)
	assert.Zero(t, likes)
	assert.Zero(t, comments)
}

func TestGetClubPosts_NewestFirst(t *testing.T) {
	s, db := newTestServer(t)
	author := createTestUser(t, db, "author")
	club := createTestClub(t, db, author.ID, "Double Features")
	first := createTestPost(t, db, author.ID, club.ID)
	second := createTestPost(t, db, author.ID, club.ID)

	app := newTestApp(s, author.ID)

	status, posts := doJSONList(t, app, http.MethodGet, "/api/clubs/1/posts")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, posts, 2)
	assert.Equal(t, float64(second.ID), posts[0]["id"])
	assert.Equal(t, float64(first.ID), posts[1]["id"])
}

func TestComments_CreateListDelete(t *testing.T) {
	s, db := newTestServer(t)
	author := createTestUser(t, db, "author")
	commenter := createTestUser(t, db, "commenter")
	club := createTestClub(t, db, author.ID, "Talkies")
	createTestPost(t, db, author.ID, club.ID)

	commenterApp := newTestApp(s, commenter.ID)

	status, body := doJSON(t, commenterApp, http.MethodPost, "/api/posts/1/comments", map[string]string{
		"content": "Completely agree about the pacing.",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "commenter", body["username"])

	// Empty content is rejected.
	status, _ = doJSON(t, commenterApp, http.MethodPost, "/api/posts/1/comments", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)

	status, comments := doJSONList(t, commenterApp, http.MethodGet, "/api/posts/1/comments")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, comments, 1)

	// Only the author may delete.
	authorApp := newTestApp(s, author.ID)
	status, _ = doJSON(t, authorApp, http.MethodDelete, "/api/comments/1", nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = doJSON(t, commenterApp, http.MethodDelete, "/api/comments/1", nil)
	require.Equal(t, http.StatusOK, status)

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetPostLikes(t *testing.T) {
	s, db := newTestServer(t)
	author := createTestUser(t, db, "author")
	liker := createTestUser(t, db, "liker")
	club := createTestClub(t, db, author.ID, "Musicals")
	post := createTestPost(t, db, author.ID, club.ID)
	require.NoError(t, db.Create(&models.Like{UserID: liker.ID, PostID: post.ID}).Error)

	app := newTestApp(s, author.ID)

	status, body := doJSON(t, app, http.MethodGet, "/api/posts/1/likes", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["likes_count"])
	likes, ok := body["likes"].([]any)
	require.True(t, ok)
	require.Len(t, likes, 1)
	like, ok := likes[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "liker", like["username"])
}

func TestGetLikedPosts(t *testing.T) {
	s, db := newTestServer(t)
	author := createTestUser(t, db, "author")
	fan := createTestUser(t, db, "fan")
	club := createTestClub(t, db, author.ID, "Westerns")
	liked := createTestPost(t, db, author.ID, club.ID)
	createTestPost(t, db, author.ID, club.ID)
	require.NoError(t, db.Create(&models.Like{UserID: fan.ID, PostID: liked.ID}).Error)

	app := newTestApp(s, fan.ID)

	status, posts := doJSONList(t, app, http.MethodGet, "/api/users/2/liked_posts")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, posts, 1)
	assert.EqualValues(t, liked.ID, posts[0]["id"])
	assert.Equal(t, "author", posts[0]["author_username"])

	status, _ = doJSONList(t, app, http.MethodGet, "/api/users/999/liked_posts")
	assert.Equal(t, http.StatusNotFound, status)
}
