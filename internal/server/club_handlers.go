package server

import (
	"fmt"

	"github.com/maxwellkiplagat/Movie-clubb/internal/middleware"
	"github.com/maxwellkiplagat/Movie-clubb/internal/models"
	"github.com/maxwellkiplagat/Movie-clubb/internal/service"
	"github.com/maxwellkiplagat/Movie-clubb/internal/views"

	"github.com/gofiber/fiber/v2"
)

// GetClubs handles GET /api/clubs
func (s *Server) GetClubs(c *fiber.Ctx) error {
	clubs, err := s.clubService.ListClubs(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(views.Clubs(clubs))
}

// GetClub handles GET /api/clubs/:id
func (s *Server) GetClub(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	club, err := s.clubService.GetClub(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(views.Club(club))
}

// CreateClub handles POST /api/clubs
func (s *Server) CreateClub(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Genre       string `json:"genre"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	club, err := s.clubService.CreateClub(c.Context(), service.CreateClubInput{
		CreatorID:   currentUserID(c),
		Name:        req.Name,
		Description: req.Description,
		Genre:       req.Genre,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(views.Club(club))
}

// JoinClub handles POST /api/clubs/:id/join
func (s *Server) JoinClub(c *fiber.Ctx) error {
	clubID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	club, err := s.clubService.Join(c.Context(), currentUserID(c), clubID)
	if err != nil {
		return respondError(c, err)
	}

	middleware.ClubJoinsTotal.Inc()
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Joined %s", club.Name),
	})
}

// LeaveClub handles DELETE /api/clubs/:id/leave
func (s *Server) LeaveClub(c *fiber.Ctx) error {
	clubID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	club, err := s.clubService.Leave(c.Context(), currentUserID(c), clubID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Left %s", club.Name),
	})
}

// DeleteClub handles DELETE /api/clubs/:id
func (s *Server) DeleteClub(c *fiber.Ctx) error {
	clubID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.clubService.DeleteClub(c.Context(), currentUserID(c), clubID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Club deleted",
	})
}
