package repository

import (
	"context"
	"errors"

	"github.com/maxwellkiplagat/Movie-clubb/internal/cache"
	"github.com/maxwellkiplagat/Movie-clubb/internal/models"

	"gorm.io/gorm"
)

// ClubRepository defines persistence operations for clubs and memberships.
type ClubRepository interface {
	Create(ctx context.Context, club *models.Club) error
	GetByID(ctx context.Context, id uint) (*models.Club, error)
	GetDetailed(ctx context.Context, id uint) (*models.Club, error)
	List(ctx context.Context) ([]models.Club, error)
	Delete(ctx context.Context, id uint) error

	AddMember(ctx context.Context, userID, clubID uint) (*models.ClubMember, error)
	RemoveMember(ctx context.Context, userID, clubID uint) error
	GetMembership(ctx context.Context, userID, clubID uint) (*models.ClubMember, error)
	GetClubsForUser(ctx context.Context, userID uint) ([]models.Club, error)
}

type clubRepository struct {
	db *gorm.DB
}

// NewClubRepository returns a new ClubRepository implementation.
func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) Create(ctx context.Context, club *models.Club) error {
	if err := r.db.WithContext(ctx).Create(club).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("A club with this name already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *clubRepository) GetByID(ctx context.Context, id uint) (*models.Club, error) {
	var club models.Club
	key := cache.ClubKey(id)

	err := cache.Aside(ctx, key, &club, cache.ClubTTL, func() error {
		if err := r.db.WithContext(ctx).First(&club, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Club", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &club, nil
}

// GetDetailed loads a club with the relations the club view flattens:
// members for the live count and the creator for the username.
func (r *clubRepository) GetDetailed(ctx context.Context, id uint) (*models.Club, error) {
	var club models.Club
	if err := r.db.WithContext(ctx).
		Preload("Members").
		Preload("Creator").
		First(&club, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Club", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &club, nil
}

func (r *clubRepository) List(ctx context.Context) ([]models.Club, error) {
	var clubs []models.Club
	if err := r.db.WithContext(ctx).
		Preload("Members").
		Preload("Creator").
		Order("created_at DESC").
		Find(&clubs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return clubs, nil
}

// Delete removes a club and cascades over its posts (with their likes and
// comments) and memberships. Everything commits or rolls back together.
func (r *clubRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var club models.Club
		if err := tx.First(&club, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Club", id)
			}
			return models.NewInternalError(err)
		}

		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("club_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return models.NewInternalError(err)
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Like{}).Error; err != nil {
				return models.NewInternalError(err)
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return models.NewInternalError(err)
			}
			if err := tx.Where("id IN ?", postIDs).Delete(&models.Post{}).Error; err != nil {
				return models.NewInternalError(err)
			}
		}

		if err := tx.Where("club_id = ?", id).Delete(&models.ClubMember{}).Error; err != nil {
			return models.NewInternalError(err)
		}

		if err := tx.Delete(&models.Club{}, id).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	cache.InvalidateClub(ctx, id)
	return nil
}

// AddMember inserts the membership edge. A duplicate pair surfaces as a
// conflict, including when two racing joins hit the unique index.
func (r *clubRepository) AddMember(ctx context.Context, userID, clubID uint) (*models.ClubMember, error) {
	member := &models.ClubMember{UserID: userID, ClubID: clubID}
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, models.NewConflictError("Already a member of this club")
		}
		return nil, models.NewInternalError(err)
	}
	cache.InvalidateClub(ctx, clubID)
	return member, nil
}

func (r *clubRepository) RemoveMember(ctx context.Context, userID, clubID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND club_id = ?", userID, clubID).
		Delete(&models.ClubMember{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return &models.AppError{Code: "NOT_FOUND", Message: "You are not a member of this club"}
	}
	cache.InvalidateClub(ctx, clubID)
	return nil
}

func (r *clubRepository) GetMembership(ctx context.Context, userID, clubID uint) (*models.ClubMember, error) {
	var member models.ClubMember
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND club_id = ?", userID, clubID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &member, nil
}

func (r *clubRepository) GetClubsForUser(ctx context.Context, userID uint) ([]models.Club, error) {
	var clubs []models.Club
	if err := r.db.WithContext(ctx).
		Joins("JOIN club_members cm ON cm.club_id = clubs.id").
		Where("cm.user_id = ?", userID).
		Preload("Members").
		Preload("Creator").
		Find(&clubs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return clubs, nil
}
