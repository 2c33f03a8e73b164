package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	CategoryID uuid.UUID `gorm:"type:uuid;index;not null"`

	NameEn string `gorm:"not null"`
	NameFr string
	NameRw string

	DescriptionEn string
	DescriptionFr string
	DescriptionRw string

	// RWF, no fractional subunits in practice.
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Icon  string
	Color string

	// Services referenced by historical transaction items are never
	// hard-deleted; "delete" flips this flag.
	IsAvailable bool `gorm:"default:true"`

	TransactionItems []TransactionItem `gorm:"foreignKey:ServiceID" json:"-"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
