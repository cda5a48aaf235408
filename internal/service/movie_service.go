package service

import (
	"context"

	"github.com/maxwellkiplagat/Movie-clubb/internal/models"
	"github.com/maxwellkiplagat/Movie-clubb/internal/repository"
)

// MovieService provides catalog business logic.
type MovieService struct {
	movieRepo repository.MovieRepository
}

// NewMovieService returns a new MovieService.
func NewMovieService(movieRepo repository.MovieRepository) *MovieService {
	return &MovieService{movieRepo: movieRepo}
}

// CreateMovieInput carries the fields for a new catalog entry.
type CreateMovieInput struct {
	Title       string
	Genre       string
	ReleaseYear int
	Director    string
	Description string
	PosterURL   string
}

// CreateMovie validates and persists a catalog entry.
func (s *MovieService) CreateMovie(ctx context.Context, in CreateMovieInput) (*models.Movie, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}

	movie := &models.Movie{
		Title:       in.Title,
		Genre:       in.Genre,
		ReleaseYear: in.ReleaseYear,
		Director:    in.Director,
		Description: in.Description,
		PosterURL:   in.PosterURL,
	}
	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// GetMovie returns one catalog entry.
func (s *MovieService) GetMovie(ctx context.Context, movieID uint) (*models.Movie, error) {
	return s.movieRepo.GetByID(ctx, movieID)
}

// ListMovies returns the catalog ordered by title.
func (s *MovieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return s.movieRepo.List(ctx)
}
