package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReceiptLog records one SMS/WhatsApp receipt attempt for a completed
// transaction.
type ReceiptLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	TransactionID uuid.UUID `gorm:"type:uuid;index;not null"`

	Phone   string
	Message string
	Channel string `gorm:"type:varchar(20)"` // "sms" or "whatsapp"
	Status  string `gorm:"type:varchar(20)"` // "sent" or "failed"

	ErrorMessage string
	SentAt       time.Time
}

func (r *ReceiptLog) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
