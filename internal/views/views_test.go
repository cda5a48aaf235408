package views

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/maxwellkiplagat/Movie-clubb/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCyclicGraph wires a user, club, and post into a fully cyclic in-memory
// graph: the user authors the post, the post points back at the user, the
// club's member list points at the user, and the user's membership points at
// the club.
func buildCyclicGraph() (*models.User, *models.Club, *models.Post) {
	user := &models.User{
		ID:        1,
		Username:  "frank",
		Email:     "frank@example.com",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	club := &models.Club{
		ID:              2,
		Name:            "Noir Nights",
		Genre:           "Noir",
		CreatedByUserID: &user.ID,
		Creator:         user,
	}
	post := &models.Post{
		ID:         3,
		MovieTitle: "The Third Man",
		Content:    "That zither score.",
		UserID:     user.ID,
		ClubID:     club.ID,
		Author:     user,
	}
	membership := models.ClubMember{UserID: user.ID, ClubID: club.ID, User: user, Club: club}
	club.Members = []models.ClubMember{membership}
	user.ClubMemberships = []models.ClubMember{membership}
	user.ClubsCreated = []models.Club{*club}
	user.Posts = []models.Post{*post}
	return user, club, post
}

func TestUserViewTerminatesOnCyclicGraph(t *testing.T) {
	user, _, _ := buildCyclicGraph()
	user.Followers = []models.Follow{
		{FollowerID: 10, FollowedID: user.ID},
		{FollowerID: 11, FollowedID: user.ID},
	}
	user.Following = []models.Follow{{FollowerID: user.ID, FollowedID: 10}}

	v := User(user)

	assert.Equal(t, uint(1), v.ID)
	assert.Equal(t, 2, v.FollowersCount)
	assert.Equal(t, 1, v.FollowingCount)
	require.Len(t, v.ClubMemberships, 1)
	assert.Equal(t, "Noir Nights", v.ClubMemberships[0].Name)
	require.Len(t, v.ClubsCreated, 1)

	// The projection must serialize without recursing into the entity cycle.
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "reset_token")
}

func TestUserViewSkipsUnloadedMembershipClubs(t *testing.T) {
	user := &models.User{
		ID:              7,
		Username:        "lena",
		ClubMemberships: []models.ClubMember{{UserID: 7, ClubID: 9, Club: nil}},
	}
	v := User(user)
	assert.Empty(t, v.ClubMemberships)
	assert.NotNil(t, v.ClubMemberships)
}

func TestClubViewFlattensCreator(t *testing.T) {
	_, club, _ := buildCyclicGraph()

	v := Club(club)
	require.NotNil(t, v.CreatorUsername)
	assert.Equal(t, "frank", *v.CreatorUsername)
	assert.Equal(t, 1, v.MemberCount)

	club.Creator = nil
	club.CreatedByUserID = nil
	orphan := Club(club)
	assert.Nil(t, orphan.CreatorUsername)
	assert.Nil(t, orphan.CreatedByUserID)
}

func TestPostViewCountsAndFallbacks(t *testing.T) {
	user, _, post := buildCyclicGraph()
	post.Likes = []models.Like{{UserID: user.ID, PostID: post.ID}}
	post.Comments = []models.Comment{
		{ID: 4, UserID: user.ID, PostID: post.ID, Content: "agreed", User: user},
		{ID: 5, UserID: 99, PostID: post.ID, Content: "orphaned"},
	}

	v := Post(post)
	assert.Equal(t, 1, v.LikesCount)
	require.NotNil(t, v.AuthorID)
	assert.Equal(t, "frank", v.AuthorUsername)
	require.Len(t, v.Comments, 2)
	assert.Equal(t, "frank", v.Comments[0].Username)
	assert.Equal(t, "Unknown", v.Comments[1].Username)

	post.Author = nil
	anon := Post(post)
	assert.Nil(t, anon.AuthorID)
	assert.Equal(t, "Unknown", anon.AuthorUsername)
}

func TestFollowViewResolvesBothEndpoints(t *testing.T) {
	f := &models.Follow{
		ID:         1,
		FollowerID: 1,
		FollowedID: 2,
		Follower:   &models.User{ID: 1, Username: "frank"},
		Followed:   &models.User{ID: 2, Username: "grace"},
	}
	v := Follow(f)
	assert.Equal(t, "frank", v.FollowerUsername)
	assert.Equal(t, "grace", v.FollowedUsername)
}

func TestIsoTime(t *testing.T) {
	assert.Nil(t, isoTime(time.Time{}))

	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("EAT", 3*60*60))
	got := isoTime(ts)
	require.NotNil(t, got)
	assert.Equal(t, "2026-03-01T09:00:00Z", *got)
}

func TestWatchlistViewStatusString(t *testing.T) {
	w := &models.WatchlistEntry{
		ID:         1,
		UserID:     1,
		MovieID:    2,
		MovieTitle: "Alien",
		Genre:      "Sci-Fi",
		Status:     models.WatchlistStatusWatched,
	}
	v := Watchlist(w)
	assert.Equal(t, "watched", v.Status)
	assert.Equal(t, "Alien", v.MovieTitle)
}
