// Package outboxrepo stores serialized domain events in the outbox table.
// Rows are written in the business transaction and read back by the relay job.
package outboxrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxMessageDTO is one outbox row. ProcessedAt stays NULL until the relay
// has handed the message to the broker. Seq is a bigserial that records
// insertion order, which timestamps alone cannot.
type OutboxMessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq         int64      `gorm:"autoIncrement;not null;uniqueIndex"`
	EventName   string     `gorm:"type:varchar(128);not null"`
	AggregateID string     `gorm:"type:varchar(64);not null;index"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredOn  time.Time  `gorm:"not null;index"`
	ProcessedAt *time.Time `gorm:"index"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func toMessage(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		EventName:   dto.EventName,
		AggregateID: dto.AggregateID,
		Payload:     dto.Payload,
		OccurredOn:  dto.OccurredOn.UTC(),
	}, nil
}
