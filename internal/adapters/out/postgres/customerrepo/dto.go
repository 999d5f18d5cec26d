// Package customerrepo persists Customer aggregates with GORM and assembles
// the credit profile used by admission control.
package customerrepo

import (
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerDTO is the customers table row. Email is stored lower case and unique.
type CustomerDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Email       string          `gorm:"type:varchar(320);not null;uniqueIndex"`
	Name        string          `gorm:"type:varchar(255);not null"`
	CreditLimit decimal.Decimal `gorm:"type:numeric;not null"`
	IsVerified  bool            `gorm:"not null;default:false"`
	RiskLevel   string          `gorm:"type:varchar(8);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          c.ID().Bytes(),
		Email:       c.Email(),
		Name:        c.Name(),
		CreditLimit: c.CreditLimit(),
		IsVerified:  c.IsVerified(),
		RiskLevel:   c.RiskLevel().String(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	risk, err := customer.RiskLevelFromString(dto.RiskLevel)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		dto.Email,
		dto.Name,
		dto.CreditLimit,
		dto.IsVerified,
		risk,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
