package server

import (
	"github.com/maxwellkiplagat/Movie-clubb/internal/models"
	"github.com/maxwellkiplagat/Movie-clubb/internal/service"
	"github.com/maxwellkiplagat/Movie-clubb/internal/views"

	"github.com/gofiber/fiber/v2"
)

// GetMovies handles GET /api/movies
func (s *Server) GetMovies(c *fiber.Ctx) error {
	movies, err := s.movieService.ListMovies(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(views.Movies(movies))
}

// GetMovie handles GET /api/movies/:id
func (s *Server) GetMovie(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	movie, err := s.movieService.GetMovie(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(views.Movie(movie))
}

// CreateMovie handles POST /api/movies
func (s *Server) CreateMovie(c *fiber.Ctx) error {
	var req struct {
		Title       string `json:"title"`
		Genre       string `json:"genre"`
		ReleaseYear int    `json:"release_year"`
		Director    string `json:"director"`
		Description string `json:"description"`
		PosterURL   string `json:"poster_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	movie, err := s.movieService.CreateMovie(c.Context(), service.CreateMovieInput{
		Title:       req.Title,
		Genre:       req.Genre,
		ReleaseYear: req.ReleaseYear,
		Director:    req.Director,
		Description: req.Description,
		PosterURL:   req.PosterURL,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(views.Movie(movie))
}
