package repository

import (
	"context"
	"errors"

	"github.com/maxwellkiplagat/Movie-clubb/internal/models"

	"gorm.io/gorm"
)

// WatchlistRepository defines persistence operations for watchlist entries.
type WatchlistRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.WatchlistEntry, error)
	GetByID(ctx context.Context, id uint) (*models.WatchlistEntry, error)
	GetByUserAndMovie(ctx context.Context, userID, movieID uint) (*models.WatchlistEntry, error)
	// Add inserts or updates the (user, movie) entry in one transaction.
	// Returns created=true for a new row, created=false for a status update,
	// and a conflict error when the entry already has the requested status.
	Add(ctx context.Context, entry *models.WatchlistEntry) (created bool, err error)
	UpdateStatus(ctx context.Context, id uint, status models.WatchlistStatus) (*models.WatchlistEntry, error)
	Delete(ctx context.Context, id uint) error
}

type watchlistRepository struct {
	db *gorm.DB
}

// NewWatchlistRepository returns a new WatchlistRepository implementation.
func NewWatchlistRepository(db *gorm.DB) WatchlistRepository {
	return &watchlistRepository{db: db}
}

func (r *watchlistRepository) ListByUser(ctx context.Context, userID uint) ([]models.WatchlistEntry, error) {
	var entries []models.WatchlistEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *watchlistRepository) GetByID(ctx context.Context, id uint) (*models.WatchlistEntry, error) {
	var entry models.WatchlistEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Watchlist item", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &entry, nil
}

func (r *watchlistRepository) GetByUserAndMovie(ctx context.Context, userID, movieID uint) (*models.WatchlistEntry, error) {
	var entry models.WatchlistEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &entry, nil
}

func (r *watchlistRepository) Add(ctx context.Context, entry *models.WatchlistEntry) (bool, error) {
	var created bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.WatchlistEntry
		err := tx.Where("user_id = ? AND movie_id = ?", entry.UserID, entry.MovieID).
			First(&existing).Error
		switch {
		case err == nil:
			if existing.Status == entry.Status {
				return models.NewConflictError("Movie already in watchlist with same status")
			}
			existing.Status = entry.Status
			if err := tx.Save(&existing).Error; err != nil {
				return models.NewInternalError(err)
			}
			*entry = existing
			created = false
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(entry).Error; err != nil {
				if isUniqueConstraintError(err) {
					// Racing add of the same pair; the other writer won.
					return models.NewConflictError("Movie already in watchlist")
				}
				return models.NewInternalError(err)
			}
			created = true
			return nil
		default:
			return models.NewInternalError(err)
		}
	})
	return created, err
}

func (r *watchlistRepository) UpdateStatus(ctx context.Context, id uint, status models.WatchlistStatus) (*models.WatchlistEntry, error) {
	var entry models.WatchlistEntry
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&entry, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Watchlist item", id)
			}
			return models.NewInternalError(err)
		}
		entry.Status = status
		if err := tx.Save(&entry).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *watchlistRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.WatchlistEntry{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Watchlist item", id)
	}
	return nil
}
