package server

import (
	"github.com/maxwellkiplagat/Movie-clubb/internal/views"

	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	followedID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	followerID := currentUserID(c)

	follow, err := s.followService.Follow(c.Context(), followerID, followedID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(views.Follow(follow))
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	followedID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	followerID := currentUserID(c)

	if err := s.followService.Unfollow(c.Context(), followerID, followedID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Unfollowed user",
	})
}
