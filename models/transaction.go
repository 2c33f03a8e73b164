package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction lifecycle states. Completed, cancelled and refunded are
// terminal; failed is reached through a failed payment record.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusRefunded  = "refunded"
	StatusFailed    = "failed"
)

// Payment methods accepted at the till.
const (
	MethodCash = "cash"
	MethodMoMo = "momo"
	MethodCard = "card"
)

type Transaction struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	// Human-readable business identifier, e.g. T-123456-7890. Distinct
	// from the surrogate key and unique across all transactions.
	TransactionNumber string `gorm:"uniqueIndex;not null"`

	Status        string `gorm:"type:varchar(20);index;default:'pending'"`
	PaymentMethod string `gorm:"type:varchar(20)"`

	Subtotal decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Tax      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total    decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	CashReceived decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	ChangeDue    decimal.NullDecimal `gorm:"type:decimal(10,2)"`

	CustomerName  string `gorm:"default:'Walk-in Customer'"`
	CustomerPhone string
	CustomerTIN   string

	TransactionDate time.Time  `gorm:"index;default:CURRENT_TIMESTAMP"`
	PaymentDate     *time.Time
	CompletedDate   *time.Time

	Items    []TransactionItem `gorm:"foreignKey:TransactionID"`
	Payments []PaymentRecord   `gorm:"foreignKey:TransactionID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TransactionItem is the frozen snapshot of one cart line at
// transaction-creation time. Later catalog edits must not alter it.
type TransactionItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	TransactionID uuid.UUID `gorm:"type:uuid;index;not null"`

	ServiceID          uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceName        string    `gorm:"not null"`
	ServiceDescription string
	ServiceType        string `gorm:"type:varchar(20)"`
	Icon               string

	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity  int             `gorm:"default:1"`

	// Serialized "name:price" add-on pairs chosen for this line.
	Addons string

	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

func (ti *TransactionItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ti.ID == uuid.Nil {
		ti.ID = uuid.New()
	}
	return
}
