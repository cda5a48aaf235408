package server

import (
	"github.com/maxwellkiplagat/Movie-clubb/internal/models"
	"github.com/maxwellkiplagat/Movie-clubb/internal/views"

	"github.com/gofiber/fiber/v2"
)

// GetUser handles GET /api/users/:id. The full profile is only visible to
// its owner; the identity comes from the verified token, never the URL.
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if id != currentUserID(c) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You can only view your own profile"))
	}

	profile, err := s.userRepo.GetProfile(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(views.User(profile))
}

// GetLikedPosts handles GET /api/users/:id/liked_posts
func (s *Server) GetLikedPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	posts, err := s.postService.ListLikedPosts(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(views.Posts(posts))
}

// GetUserClubs handles GET /api/users/:id/clubs
func (s *Server) GetUserClubs(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	clubs, err := s.clubService.ClubsForUser(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(views.Clubs(clubs))
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	users, err := s.followService.Followers(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(views.UserSummaries(users))
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	users, err := s.followService.Following(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(views.UserSummaries(users))
}
