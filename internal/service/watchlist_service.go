package service

import (
	"context"

	"github.com/maxwellkiplagat/Movie-clubb/internal/models"
	"github.com/maxwellkiplagat/Movie-clubb/internal/repository"
)

// WatchlistService provides watchlist business logic.
type WatchlistService struct {
	watchlistRepo repository.WatchlistRepository
	movieRepo     repository.MovieRepository
	userRepo      repository.UserRepository
}

// NewWatchlistService returns a new WatchlistService.
func NewWatchlistService(watchlistRepo repository.WatchlistRepository, movieRepo repository.MovieRepository, userRepo repository.UserRepository) *WatchlistService {
	return &WatchlistService{
		watchlistRepo: watchlistRepo,
		movieRepo:     movieRepo,
		userRepo:      userRepo,
	}
}

// AddInput carries the fields for adding a movie to a watchlist.
type AddInput struct {
	UserID  uint
	MovieID uint
	Status  string
}

// List returns the user's watchlist entries.
func (s *WatchlistService) List(ctx context.Context, userID uint) ([]models.WatchlistEntry, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.watchlistRepo.ListByUser(ctx, userID)
}

// Add puts a movie on the user's watchlist. Adding a movie that is already
// listed updates its status instead of inserting a second row; re-adding
// with the identical status is a conflict. The second return value reports
// whether a new entry was created.
func (s *WatchlistService) Add(ctx context.Context, in AddInput) (*models.WatchlistEntry, bool, error) {
	status := models.WatchlistStatus(in.Status)
	if status == "" {
		status = models.WatchlistStatusPending
	}
	if !models.ValidWatchlistStatus(status) {
		return nil, false, models.NewValidationError("Status must be one of: pending, watched, liked")
	}

	movie, err := s.movieRepo.GetByID(ctx, in.MovieID)
	if err != nil {
		return nil, false, err
	}

	entry := &models.WatchlistEntry{
		UserID:     in.UserID,
		MovieID:    in.MovieID,
		MovieTitle: movie.Title,
		Genre:      movie.Genre,
		Status:     status,
	}
	created, err := s.watchlistRepo.Add(ctx, entry)
	if err != nil {
		return nil, false, err
	}
	return entry, created, nil
}

// UpdateStatus changes the status of one of the user's entries. Entries
// belonging to other users are reported as not found.
func (s *WatchlistService) UpdateStatus(ctx context.Context, userID, entryID uint, status string) (*models.WatchlistEntry, error) {
	newStatus := models.WatchlistStatus(status)
	if !models.ValidWatchlistStatus(newStatus) {
		return nil, models.NewValidationError("Status must be one of: pending, watched, liked")
	}

	entry, err := s.watchlistRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, models.NewNotFoundError("Watchlist item", entryID)
	}

	return s.watchlistRepo.UpdateStatus(ctx, entryID, newStatus)
}

// Remove deletes one of the user's entries.
func (s *WatchlistService) Remove(ctx context.Context, userID, entryID uint) error {
	entry, err := s.watchlistRepo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return models.NewNotFoundError("Watchlist item", entryID)
	}
	return s.watchlistRepo.Delete(ctx, entryID)
}
