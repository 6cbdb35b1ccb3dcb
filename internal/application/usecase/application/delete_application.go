package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/avlorenzana/jobtrail/adapters/event"
	"github.com/avlorenzana/jobtrail/internal/domain/application"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

type DeleteApplicationUseCase struct {
	appRepo     application.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewDeleteApplicationUseCase(repo application.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *DeleteApplicationUseCase {
	return &DeleteApplicationUseCase{
		appRepo:     repo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type DeleteApplicationInput struct {
	OwnerID string
	ID      string
}

// Execute removes the record for good. Hard delete, no tombstone.
func (uc *DeleteApplicationUseCase) Execute(ctx context.Context, input DeleteApplicationInput) error {
	if err := uc.appRepo.Delete(ctx, input.OwnerID, input.ID); err != nil {
		return err
	}

	if uc.kafkaClient != nil {
		go func() {
			err := uc.kafkaClient.PublishApplicationEvent(context.Background(), event.ApplicationEventPayload{
				EventType:     event.ApplicationEventTypeDeleted,
				ApplicationID: input.ID,
				OwnerID:       input.OwnerID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish Kafka 'deleted' event", err, zap.String("application_id", input.ID))
			}
		}()
	}

	return nil
}
