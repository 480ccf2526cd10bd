package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

var (
	ErrEncode  = errors.New("notifier: failed to encode event")
	ErrPublish = errors.New("notifier: failed to publish event")
)

// Producer публикует события бронирований в Kafka
type Producer struct {
	sync  sarama.SyncProducer
	topic string
	log   Logger
	now   func() time.Time
}

// NewProducer подключается к брокерам
func NewProducer(brokers []string, topic string, log Logger) (*Producer, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_1_0_0
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Net.MaxOpenRequests = 1

	sp, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: create producer: %v", ErrPublish, err)
	}

	return NewWithProducer(sp, topic, log), nil
}

// NewWithProducer оборачивает готовый SyncProducer
func NewWithProducer(sp sarama.SyncProducer, topic string, log Logger) *Producer {
	return &Producer{sync: sp, topic: topic, log: log, now: time.Now}
}

// BookingCreated публикует booking.created
func (p *Producer) BookingCreated(ctx context.Context, b *domain.Booking) error {
	return p.publish(ctx, EventBookingCreated, bookingKey(b.ID), bookingPayload(b, ""))
}

// BookingCancelled публикует booking.cancelled
func (p *Producer) BookingCancelled(ctx context.Context, b *domain.Booking) error {
	return p.publish(ctx, EventBookingCancelled, bookingKey(b.ID), bookingPayload(b, ""))
}

// BookingStatusChanged публикует booking.status_changed
func (p *Producer) BookingStatusChanged(ctx context.Context, b *domain.Booking, previous domain.BookingStatus) error {
	return p.publish(ctx, EventBookingStatusChanged, bookingKey(b.ID), bookingPayload(b, previous))
}

// ReservationCreated публикует reservation.created
func (p *Producer) ReservationCreated(ctx context.Context, payload ReservationPayload) error {
	key := payload.Kind + ":" + strconv.FormatInt(payload.ReservationID, 10)
	return p.publish(ctx, EventReservationCreated, key, payload)
}

func (p *Producer) publish(ctx context.Context, eventType, key string, data interface{}) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPublish, eventType, err)
	}

	body, err := json.Marshal(Envelope{Type: eventType, OccurredAt: p.now().UTC(), Data: data})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, eventType, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(eventType)},
		},
	}

	partition, offset, err := p.sync.SendMessage(msg)
	if err != nil {
		p.log.Error("Failed to publish %s key=%s: %v", eventType, key, err)
		return fmt.Errorf("%w: %s: %v", ErrPublish, eventType, err)
	}

	p.log.Info("Published %s key=%s partition=%d offset=%d", eventType, key, partition, offset)
	return nil
}

// Close закрывает продюсер
func (p *Producer) Close() error {
	if p.sync == nil {
		return nil
	}
	return p.sync.Close()
}

func bookingKey(id int64) string {
	return "booking:" + strconv.FormatInt(id, 10)
}

func bookingPayload(b *domain.Booking, previous domain.BookingStatus) BookingPayload {
	return BookingPayload{
		BookingID:      b.ID,
		HouseID:        b.HouseID,
		UserID:         b.UserID,
		CheckIn:        b.CheckIn.Format(domain.DateFormat),
		CheckOut:       b.CheckOut.Format(domain.DateFormat),
		Guests:         b.Guests,
		TotalPrice:     b.TotalPrice,
		Status:         string(b.Status),
		PreviousStatus: string(previous),
		GuestEmail:     b.GuestEmail,
	}
}
