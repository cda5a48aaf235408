package repository

import (
	"context"
	"errors"

	"github.com/maxwellkiplagat/Movie-clubb/internal/models"

	"gorm.io/gorm"
)

// MovieRepository defines persistence operations for the movie catalog.
type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	GetByID(ctx context.Context, id uint) (*models.Movie, error)
	List(ctx context.Context) ([]models.Movie, error)
}

type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository returns a new MovieRepository implementation.
func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	if err := r.db.WithContext(ctx).Create(movie).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *movieRepository) GetByID(ctx context.Context, id uint) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.WithContext(ctx).First(&movie, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Movie", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &movie, nil
}

func (r *movieRepository) List(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	if err := r.db.WithContext(ctx).Order("title ASC").Find(&movies).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return movies, nil
}
