package service

import (
	"context"

	"github.com/maxwellkiplagat/Movie-clubb/internal/models"
	"github.com/maxwellkiplagat/Movie-clubb/internal/repository"
)

// PostService provides post and like business logic.
type PostService struct {
	postRepo repository.PostRepository
	clubRepo repository.ClubRepository
	userRepo repository.UserRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, clubRepo repository.ClubRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		clubRepo: clubRepo,
		userRepo: userRepo,
	}
}

// CreatePostInput carries the fields for a new post.
type CreatePostInput struct {
	AuthorID   uint
	ClubID     uint
	MovieTitle string
	Content    string
}

// CreatePost validates referenced rows and persists the post. Membership in
// the club is not required to post.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.MovieTitle == "" || in.Content == "" {
		return nil, models.NewValidationError("Movie title and content are required")
	}
	if _, err := s.userRepo.GetByID(ctx, in.AuthorID); err != nil {
		return nil, err
	}
	if _, err := s.clubRepo.GetByID(ctx, in.ClubID); err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:     in.AuthorID,
		ClubID:     in.ClubID,
		MovieTitle: in.MovieTitle,
		Content:    in.Content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost returns the post with author, likes, and comments loaded.
func (s *PostService) GetPost(ctx context.Context, postID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// ListClubPosts returns the posts of a club, newest first.
func (s *PostService) ListClubPosts(ctx context.Context, clubID uint) ([]models.Post, error) {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}
	return s.postRepo.ListByClub(ctx, clubID)
}

// DeletePost removes a post and its likes and comments. Only the author may
// delete.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != userID {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	return s.postRepo.Delete(ctx, postID)
}

// ToggleLike flips the like edge between the user and the post. It reports
// whether the post is liked after the call and the resulting like count.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (bool, int, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return false, 0, err
	}
	return s.postRepo.ToggleLike(ctx, userID, postID)
}

// ListLikes returns the likes of a post with their users loaded.
func (s *PostService) ListLikes(ctx context.Context, postID uint) ([]models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.postRepo.ListLikes(ctx, postID)
}

// ListLikedPosts returns the posts a user has liked.
func (s *PostService) ListLikedPosts(ctx context.Context, userID uint) ([]models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.postRepo.ListLikedPosts(ctx, userID)
}
