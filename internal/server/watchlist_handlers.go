package server

import (
	"github.com/maxwellkiplagat/Movie-clubb/internal/models"
	"github.com/maxwellkiplagat/Movie-clubb/internal/service"
	"github.com/maxwellkiplagat/Movie-clubb/internal/views"

	"github.com/gofiber/fiber/v2"
)

// requireWatchlistOwner rejects requests against another user's watchlist.
// Returns the owner ID, or errResponseWritten after committing a 403.
func (s *Server) requireWatchlistOwner(c *fiber.Ctx) (uint, error) {
	id, err := s.parseID(c, "id")
	if err != nil {
		return 0, errResponseWritten
	}
	if id != currentUserID(c) {
		_ = models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You can only manage your own watchlist"))
		return 0, errResponseWritten
	}
	return id, nil
}

// GetWatchlist handles GET /api/users/:id/watchlist
func (s *Server) GetWatchlist(c *fiber.Ctx) error {
	userID, err := s.requireWatchlistOwner(c)
	if err != nil {
		return nil
	}

	entries, err := s.watchlistService.List(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(views.Watchlists(entries))
}

// AddToWatchlist handles POST /api/users/:id/watchlist. Re-adding a listed
// movie with a new status updates it in place and returns 200 instead of 201.
func (s *Server) AddToWatchlist(c *fiber.Ctx) error {
	userID, err := s.requireWatchlistOwner(c)
	if err != nil {
		return nil
	}

	var req struct {
		MovieID uint   `json:"movie_id"`
		Status  string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.MovieID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Movie ID is required"))
	}

	entry, created, err := s.watchlistService.Add(c.Context(), service.AddInput{
		UserID:  userID,
		MovieID: req.MovieID,
		Status:  req.Status,
	})
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(views.Watchlist(entry))
}

// UpdateWatchlistItem handles PATCH /api/users/:id/watchlist/:itemId
func (s *Server) UpdateWatchlistItem(c *fiber.Ctx) error {
	userID, err := s.requireWatchlistOwner(c)
	if err != nil {
		return nil
	}
	itemID, err := s.parseID(c, "itemId")
	if err != nil {
		return nil
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	entry, err := s.watchlistService.UpdateStatus(c.Context(), userID, itemID, req.Status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(views.Watchlist(entry))
}

// RemoveFromWatchlist handles DELETE /api/users/:id/watchlist/:itemId
func (s *Server) RemoveFromWatchlist(c *fiber.Ctx) error {
	userID, err := s.requireWatchlistOwner(c)
	if err != nil {
		return nil
	}
	itemID, err := s.parseID(c, "itemId")
	if err != nil {
		return nil
	}

	if err := s.watchlistService.Remove(c.Context(), userID, itemID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Removed from watchlist",
	})
}
