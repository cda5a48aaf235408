package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	// UserTTL bounds staleness of cached user rows.
	UserTTL = 5 * time.Minute
	// ClubTTL bounds staleness of cached club rows.
	ClubTTL = 10 * time.Minute
	// PostTTL bounds staleness of cached post rows.
	PostTTL = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

func ClubKey(clubID uint) string {
	return fmt.Sprintf("club:%d", clubID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf("post:%d", postID)
}

// Invalidate removes a key. Best effort; a miss is not an error.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateClub(ctx context.Context, clubID uint) {
	Invalidate(ctx, ClubKey(clubID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}
