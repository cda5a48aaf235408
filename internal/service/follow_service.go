package service

import (
	"context"

	"github.com/maxwellkiplagat/Movie-clubb/internal/models"
	"github.com/maxwellkiplagat/Movie-clubb/internal/repository"
)

// FollowService provides follow-graph business logic.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates a directed follow edge. Self-follows are rejected and a
// second follow of the same user is a conflict.
func (s *FollowService) Follow(ctx context.Context, followerID, followedID uint) (*models.Follow, error) {
	if followerID == followedID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, followerID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, followedID); err != nil {
		return nil, err
	}

	follow := &models.Follow{
		FollowerID: followerID,
		FollowedID: followedID,
	}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return nil, err
	}
	loaded, err := s.followRepo.Get(ctx, followerID, followedID)
	if err != nil {
		return nil, err
	}
	if loaded == nil {
		// The edge was removed between the create and the re-read; the
		// created value still carries everything but the endpoint users.
		return follow, nil
	}
	return loaded, nil
}

// Unfollow removes the follow edge. Unfollowing a user who was never
// followed is not-found, not a silent no-op.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followedID uint) error {
	if _, err := s.userRepo.GetByID(ctx, followedID); err != nil {
		return err
	}
	return s.followRepo.Delete(ctx, followerID, followedID)
}

// Followers returns the users following the given user.
func (s *FollowService) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.Followers(ctx, userID)
}

// Following returns the users the given user follows.
func (s *FollowService) Following(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.Following(ctx, userID)
}
