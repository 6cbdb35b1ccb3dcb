package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avlorenzana/jobtrail/adapters/event"
	"github.com/avlorenzana/jobtrail/internal/domain/application"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

type CreateApplicationUseCase struct {
	appRepo     application.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewCreateApplicationUseCase(repo application.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *CreateApplicationUseCase {
	return &CreateApplicationUseCase{
		appRepo:     repo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type CreateApplicationInput struct {
	OwnerID     string
	ID          string
	Company     string
	Position    string
	Status      string
	Location    string
	AppliedDate string
	Notes       string
}

type CreateApplicationOutput struct {
	Application *application.JobApplication
}

func (uc *CreateApplicationUseCase) Execute(ctx context.Context, input CreateApplicationInput) (*CreateApplicationOutput, error) {
	// The client generates the id; a blank one gets a server-side uuid.
	if input.ID == "" {
		input.ID = uuid.NewString()
	}

	now := time.Now().UTC()

	newApp := &application.JobApplication{
		ID:          input.ID,
		Company:     input.Company,
		Position:    input.Position,
		Status:      application.Status(input.Status),
		Location:    input.Location,
		AppliedDate: input.AppliedDate,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := newApp.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("validation failed", err)
	}

	if err := uc.appRepo.Create(ctx, input.OwnerID, newApp); err != nil {
		return nil, err
	}

	uc.publishEvent(input.OwnerID, newApp.ID)

	return &CreateApplicationOutput{Application: newApp}, nil
}

func (uc *CreateApplicationUseCase) publishEvent(ownerID, appID string) {
	if uc.kafkaClient == nil {
		return
	}
	go func() {
		err := uc.kafkaClient.PublishApplicationEvent(context.Background(), event.ApplicationEventPayload{
			EventType:     event.ApplicationEventTypeAdded,
			ApplicationID: appID,
			OwnerID:       ownerID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish Kafka 'added' event", err, zap.String("application_id", appID))
		}
	}()
}
