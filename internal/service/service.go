package service

import (
	"context"

	"tvpss-crew-backend/internal/domain"
)

type CrewService interface {
	ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Crew, error)
	ListApplicants(ctx context.Context) ([]domain.Crew, error)
	GetCrew(ctx context.Context, crewID int32) (*domain.Crew, error)
	GetCrewByUser(ctx context.Context, userID int32) (*domain.Crew, bool, error)
	UpdateStatus(ctx context.Context, crewID int32, status domain.ApplicationStatus) error
	CountPending(ctx context.Context) (int, error)
}
