package calendar

import (
	"context"
	"fmt"

	"github.com/avlorenzana/jobtrail/internal/domain/application"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

// CalendarUseCase derives the date-indexed view from the record store on
// read. It holds no state of its own.
type CalendarUseCase struct {
	appRepo application.Repository
	logger  logger.Logger
}

func NewCalendarUseCase(repo application.Repository, log logger.Logger) *CalendarUseCase {
	return &CalendarUseCase{
		appRepo: repo,
		logger:  log,
	}
}

type ApplicationsOnInput struct {
	OwnerID string
	Date    string
}

type ApplicationsOnOutput struct {
	Date         string
	Applications []application.JobApplication
}

func (uc *CalendarUseCase) ExecuteApplicationsOn(ctx context.Context, input ApplicationsOnInput) (*ApplicationsOnOutput, error) {
	target, ok := application.NormalizeDate(input.Date)
	if !ok {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("'%s' is not a valid date", input.Date), nil)
	}

	apps, err := uc.appRepo.List(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	return &ApplicationsOnOutput{
		Date:         target,
		Applications: application.FilterByDate(apps, target),
	}, nil
}

type MarkedDatesInput struct {
	OwnerID string
}

type MarkedDatesOutput struct {
	Dates []string
}

// ExecuteMarkedDates returns one entry per distinct applied date, so a
// calendar UI can mark days without revealing counts.
func (uc *CalendarUseCase) ExecuteMarkedDates(ctx context.Context, input MarkedDatesInput) (*MarkedDatesOutput, error) {
	apps, err := uc.appRepo.List(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	return &MarkedDatesOutput{Dates: application.DistinctDates(apps)}, nil
}
