package application

import (
	"context"
	"fmt"

	"github.com/avlorenzana/jobtrail/internal/domain/application"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

type ListApplicationsUseCase struct {
	appRepo application.Repository
	logger  logger.Logger
}

func NewListApplicationsUseCase(repo application.Repository, log logger.Logger) *ListApplicationsUseCase {
	return &ListApplicationsUseCase{
		appRepo: repo,
		logger:  log,
	}
}

type ListApplicationsInput struct {
	OwnerID string
}

type ListApplicationsOutput struct {
	Applications []application.JobApplication
}

func (uc *ListApplicationsUseCase) Execute(ctx context.Context, input ListApplicationsInput) (*ListApplicationsOutput, error) {
	apps, err := uc.appRepo.List(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("list applications failed: %w", err)
	}
	return &ListApplicationsOutput{Applications: apps}, nil
}
