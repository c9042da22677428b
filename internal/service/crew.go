package service

import (
	"context"
	"fmt"

	"tvpss-crew-backend/internal/domain"
	"tvpss-crew-backend/internal/logger"
	"tvpss-crew-backend/internal/repository"
)

type crewService struct {
	crewRepo repository.CrewRepository
}

func NewCrewService(crewRepo repository.CrewRepository) CrewService {
	return &crewService{crewRepo: crewRepo}
}

func (s *crewService) ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Crew, error) {
	crews, err := s.crewRepo.FindByApplicationStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew by status %q: %w", status, err)
	}
	return crews, nil
}

func (s *crewService) ListApplicants(ctx context.Context) ([]domain.Crew, error) {
	crews, err := s.crewRepo.FindAllApplicants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}
	return crews, nil
}

func (s *crewService) GetCrew(ctx context.Context, crewID int32) (*domain.Crew, error) {
	crew, err := s.crewRepo.FindCrewByID(ctx, crewID)
	if err != nil {
		return nil, fmt.Errorf("failed to get crew: %w", err)
	}
	return crew, nil
}

func (s *crewService) GetCrewByUser(ctx context.Context, userID int32) (*domain.Crew, bool, error) {
	crew, found, err := s.crewRepo.FindCrewByUserID(ctx, userID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get crew for user: %w", err)
	}
	return crew, found, nil
}

func (s *crewService) UpdateStatus(ctx context.Context, crewID int32, status domain.ApplicationStatus) error {
	log := logger.FromContext(ctx)

	if err := s.crewRepo.UpdateApplicationStatus(ctx, crewID, status); err != nil {
		log.Warn("Application status update failed", "crewID", crewID, "status", status, "error", err)
		return fmt.Errorf("failed to update application status: %w", err)
	}

	log.Info("Application status updated", "crewID", crewID, "status", status)
	return nil
}

// CountPending returns how many applications are still waiting for review.
func (s *crewService) CountPending(ctx context.Context) (int, error) {
	crews, err := s.crewRepo.FindByApplicationStatus(ctx, domain.ApplicationStatusPending)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending applications: %w", err)
	}
	return len(crews), nil
}
