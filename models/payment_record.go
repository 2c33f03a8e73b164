package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment record states.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// PaymentRecord is one payment attempt against a transaction. Records are
// append-only: status may progress pending -> completed/failed and the
// completion date gets stamped, nothing else is ever rewritten.
type PaymentRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	TransactionID uuid.UUID `gorm:"type:uuid;index;not null"`

	Method string `gorm:"type:varchar(20);not null"`
	Status string `gorm:"type:varchar(20);index;default:'pending'"`

	Amount decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	// Mobile-money confirmation code, card auth code, etc.
	ReferenceNumber string
	PaymentDetails  string

	PaymentDate   time.Time `gorm:"index;default:CURRENT_TIMESTAMP"`
	CompletedDate *time.Time
}

func (p *PaymentRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
