package repository

import (
	"context"

	"tvpss-crew-backend/internal/domain"
)

// CrewRepository reads crew applications and updates their status. Every
// method runs in its own transaction.
type CrewRepository interface {
	FindByApplicationStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Crew, error)
	FindCrewByID(ctx context.Context, crewID int32) (*domain.Crew, error)
	FindAllApplicants(ctx context.Context) ([]domain.Crew, error)
	// FindCrewByUserID reports found=false, with a nil error, when the user has no crew.
	FindCrewByUserID(ctx context.Context, userID int32) (crew *domain.Crew, found bool, err error)
	UpdateApplicationStatus(ctx context.Context, crewID int32, status domain.ApplicationStatus) error
}
