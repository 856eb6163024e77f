package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"cafe-fausse/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// Publish writes a post-commit event. Reservation events are keyed by
// reservation id so updates to the same booking stay ordered; newsletter
// events are keyed by email.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	payload, _ := json.Marshal(event)

	key := event.Email
	if event.ReservationID != 0 {
		key = strconv.Itoa(event.ReservationID)
	}

	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}
