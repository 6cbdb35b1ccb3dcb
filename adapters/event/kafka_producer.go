package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/avlorenzana/jobtrail/internal/config"
)

const TopicApplicationEvents = "application.events"

const (
	ApplicationEventTypeAdded   = "added"
	ApplicationEventTypeUpdated = "updated"
	ApplicationEventTypeDeleted = "deleted"
)

type ApplicationEventPayload struct {
	EventType     string `json:"event_type"`
	ApplicationID string `json:"application_id"`
	OwnerID       string `json:"owner_id"`
}

type KafkaProducerClient struct {
	ApplicationEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer 'application.events'
	applicationWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicApplicationEvents,
		Balancer: &kafka.LeastBytes{},
	}

	fmt.Println("Initialize Kafka Producer successfully.")

	return &KafkaProducerClient{
		ApplicationEventsWriter: applicationWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishApplicationEvent(ctx context.Context, payload ApplicationEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal application event: %w", err)
	}

	return c.ApplicationEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.ApplicationID),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ApplicationEventsWriter != nil {
		c.ApplicationEventsWriter.Close()
	}
	fmt.Println("Closed Kafka Producer")
}
