package outboxrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository. Bound to a
// transaction it is the EventPublisher the unit of work dispatches into.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Publish serializes the event and inserts it as a pending message. The
// event ID becomes the message ID, so a message is stored at most once.
func (r *GormOutboxRepository) Publish(ctx context.Context, event kernel.DomainEvent) error {
	if event == nil {
		return errs.NewValueIsRequiredError("event")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.EventName(), err)
	}

	dto := OutboxMessageDTO{
		ID:          event.EventID().Bytes(),
		EventName:   event.EventName(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		OccurredOn:  event.OccurredOn(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPending locks up to limit unprocessed rows in insertion order. Must run
// inside a transaction for the lock to hold until MarkProcessed.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []OutboxMessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("processed_at IS NULL").
		Order("seq").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		msg, err := toMessage(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

func (r *GormOutboxRepository) MarkProcessed(ctx context.Context, ids ...kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	return r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id IN ?", raw).
		Update("processed_at", time.Now().UTC()).Error
}
