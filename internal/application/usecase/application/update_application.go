package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/avlorenzana/jobtrail/adapters/event"
	"github.com/avlorenzana/jobtrail/internal/domain/application"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

type UpdateApplicationUseCase struct {
	appRepo     application.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewUpdateApplicationUseCase(repo application.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *UpdateApplicationUseCase {
	return &UpdateApplicationUseCase{
		appRepo:     repo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type UpdateApplicationInput struct {
	OwnerID     string
	ID          string
	Company     string
	Position    string
	Status      string
	Location    string
	AppliedDate string
	Notes       string
}

type UpdateApplicationOutput struct {
	Application *application.JobApplication
}

// Execute replaces every field of the record except id and createdAt. The
// edit dialog always submits the full record, so there is no partial merge.
func (uc *UpdateApplicationUseCase) Execute(ctx context.Context, input UpdateApplicationInput) (*UpdateApplicationOutput, error) {
	existing, err := uc.appRepo.GetByID(ctx, input.OwnerID, input.ID)
	if err != nil {
		return nil, err
	}

	updated := &application.JobApplication{
		ID:          existing.ID,
		Company:     input.Company,
		Position:    input.Position,
		Status:      application.Status(input.Status),
		Location:    input.Location,
		AppliedDate: input.AppliedDate,
		Notes:       input.Notes,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := updated.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("validation failed", err)
	}

	if err := uc.appRepo.Update(ctx, input.OwnerID, updated); err != nil {
		return nil, err
	}

	uc.publishEvent(input.OwnerID, updated.ID)

	return &UpdateApplicationOutput{Application: updated}, nil
}

func (uc *UpdateApplicationUseCase) publishEvent(ownerID, appID string) {
	if uc.kafkaClient == nil {
		return
	}
	go func() {
		err := uc.kafkaClient.PublishApplicationEvent(context.Background(), event.ApplicationEventPayload{
			EventType:     event.ApplicationEventTypeUpdated,
			ApplicationID: appID,
			OwnerID:       ownerID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish Kafka 'updated' event", err, zap.String("application_id", appID))
		}
	}()
}
