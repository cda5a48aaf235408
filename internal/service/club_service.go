// Package service implements the business rules on top of the repositories.
package service

import (
	"context"

	"github.com/maxwellkiplagat/Movie-clubb/internal/models"
	"github.com/maxwellkiplagat/Movie-clubb/internal/repository"
)

// ClubService provides club and membership business logic.
type ClubService struct {
	clubRepo repository.ClubRepository
	userRepo repository.UserRepository
}

// NewClubService returns a new ClubService.
func NewClubService(clubRepo repository.ClubRepository, userRepo repository.UserRepository) *ClubService {
	return &ClubService{
		clubRepo: clubRepo,
		userRepo: userRepo,
	}
}

// CreateClubInput carries the fields for a new club.
type CreateClubInput struct {
	CreatorID   uint
	Name        string
	Description string
	Genre       string
}

// CreateClub validates and persists a new club. The creator automatically
// becomes its first member.
func (s *ClubService) CreateClub(ctx context.Context, in CreateClubInput) (*models.Club, error) {
	if in.Name == "" || in.Description == "" || in.Genre == "" {
		return nil, models.NewValidationError("Name, description, and genre are required")
	}

	creatorID := in.CreatorID
	club := &models.Club{
		Name:            in.Name,
		Description:     in.Description,
		Genre:           in.Genre,
		CreatedByUserID: &creatorID,
	}
	if err := s.clubRepo.Create(ctx, club); err != nil {
		return nil, err
	}

	if _, err := s.clubRepo.AddMember(ctx, creatorID, club.ID); err != nil {
		return nil, err
	}

	return s.clubRepo.GetDetailed(ctx, club.ID)
}

// GetClub returns the club with relations loaded for projection.
func (s *ClubService) GetClub(ctx context.Context, clubID uint) (*models.Club, error) {
	return s.clubRepo.GetDetailed(ctx, clubID)
}

// ListClubs returns all clubs with relations loaded for projection.
func (s *ClubService) ListClubs(ctx context.Context) ([]models.Club, error) {
	return s.clubRepo.List(ctx)
}

// ClubsForUser returns the clubs the user has joined.
func (s *ClubService) ClubsForUser(ctx context.Context, userID uint) ([]models.Club, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.clubRepo.GetClubsForUser(ctx, userID)
}

// Join creates the membership edge. The membership row's existence is the
// join state: a second join for the same pair is a conflict, never a
// duplicate row, even when two requests race.
func (s *ClubService) Join(ctx context.Context, userID, clubID uint) (*models.Club, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	if _, err := s.clubRepo.AddMember(ctx, userID, clubID); err != nil {
		return nil, err
	}
	return club, nil
}

// Leave removes the membership edge; leaving a club the user is not a
// member of is not-found, not a silent no-op.
func (s *ClubService) Leave(ctx context.Context, userID, clubID uint) (*models.Club, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	if err := s.clubRepo.RemoveMember(ctx, userID, clubID); err != nil {
		return nil, err
	}
	return club, nil
}

// DeleteClub removes a club and everything it owns. Only the creator may
// delete; ownership is checked server-side from the verified identity.
func (s *ClubService) DeleteClub(ctx context.Context, userID, clubID uint) error {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return err
	}

	if club.CreatedByUserID == nil || *club.CreatedByUserID != userID {
		return models.NewForbiddenError("You can only delete clubs you created")
	}

	return s.clubRepo.Delete(ctx, clubID)
}
