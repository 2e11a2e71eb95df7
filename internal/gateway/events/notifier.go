package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"fastshift/internal/entities"
	"fastshift/pkg/logger"
)

// Notifier публикует события жизненного цикла посылки в Kafka.
// Канал строго best-effort: ошибка публикации логируется и глотается,
// совершенный переход статуса она откатить не может.
type Notifier struct {
	log      logger.Logger
	producer producer
	topic    string
}

func New(log logger.Logger, producer producer, topic string) *Notifier {
	return &Notifier{
		log:      log,
		producer: producer,
		topic:    topic,
	}
}

type parcelEventMessage struct {
	ParcelID       int64     `json:"parcel_id"`
	TrackingID     string    `json:"tracking_id"`
	DeliveryStatus string    `json:"delivery_status"`
	PaymentStatus  string    `json:"payment_status"`
	AssignedRider  string    `json:"assigned_rider,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func (n *Notifier) ParcelStatusChanged(_ context.Context, event entities.ParcelEvent) {
	message := parcelEventMessage{
		ParcelID:       event.ParcelID,
		TrackingID:     event.TrackingID,
		DeliveryStatus: event.DeliveryStatus.String(),
		PaymentStatus:  event.PaymentStatus.String(),
		AssignedRider:  event.AssignedRider,
		OccurredAt:     event.OccurredAt,
	}

	value, err := json.Marshal(message)
	if err != nil {
		n.log.With(
			logger.NewField("parcel_id", event.ParcelID),
			logger.NewField("error", err),
		).Error("failed to marshal parcel event")
		return
	}

	// ключ = id посылки, события одной посылки попадают в одну партицию
	err = n.producer.Send(n.topic, strconv.FormatInt(event.ParcelID, 10), value)
	if err != nil {
		n.log.With(
			logger.NewField("parcel_id", event.ParcelID),
			logger.NewField("tracking_id", event.TrackingID),
			logger.NewField("error", err),
		).Error("failed to publish parcel event")
	}
}
