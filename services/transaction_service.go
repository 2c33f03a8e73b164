// services/transaction_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"laundrypos-backend/models"
	"laundrypos-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// How many business numbers are generated before giving up on collisions.
const numberAttempts = 5

var ErrEmptyCart = errors.New("cart has no lines")

// CustomerInfo is the free-text customer block captured at checkout.
type CustomerInfo struct {
	Name  string
	Phone string
	TIN   string
}

// PaymentResult carries the outcome of a payment capture into Complete.
type PaymentResult struct {
	Method          string
	ReferenceNumber string
	PaymentDetails  string
	CashReceived    decimal.NullDecimal
}

// TransactionService owns the transaction lifecycle: pending creation from a
// cart snapshot, payment recording, completion, cancellation and the read
// paths over the transaction store.
type TransactionService struct {
	db *gorm.DB
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{db: db}
}

// GenerateTransactionNumber builds a business number from the last six
// digits of the millisecond timestamp plus a four digit random suffix. It
// is human-friendly, not unique by construction; CreatePending checks for
// collisions before insert.
func GenerateTransactionNumber() string {
	ms := time.Now().UnixMilli()
	return fmt.Sprintf("T-%06d-%s", ms%1000000, utils.GenerateRandomDigits(4))
}

func serializeAddons(addons []CartAddon) string {
	parts := make([]string, 0, len(addons))
	for _, a := range addons {
		parts = append(parts, a.Name+":"+a.Price.StringFixed(2))
	}
	return strings.Join(parts, "|")
}

// CreatePending converts a cart snapshot into a persisted pending
// transaction with one immutable item row per cart line. Totals are
// recomputed here from the snapshot, never trusted from the client. The
// transaction and its items land atomically.
func (s *TransactionService) CreatePending(lines []CartLine, customer CustomerInfo, methodHint string) (*models.Transaction, error) {
	var lastErr error
	for attempt := 0; attempt < numberAttempts; attempt++ {
		txn, err := s.CreatePendingWithNumber(GenerateTransactionNumber(), lines, customer, methodHint)
		if errors.Is(err, ErrDuplicateTransactionNumber) {
			lastErr = err
			continue
		}
		return txn, err
	}
	return nil, lastErr
}

// CreatePendingWithNumber is CreatePending with a caller-chosen business
// number. It fails with ErrDuplicateTransactionNumber, inserting nothing,
// when the number already exists.
func (s *TransactionService) CreatePendingWithNumber(number string, lines []CartLine, customer CustomerInfo, methodHint string) (*models.Transaction, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	name := customer.Name
	if name == "" {
		name = "Walk-in Customer"
	}

	subtotal := decimal.Zero
	items := make([]models.TransactionItem, 0, len(lines))
	for _, line := range lines {
		total := line.LineTotal()
		subtotal = subtotal.Add(total)

		// The category type is resolved from the catalog at freeze time;
		// everything else comes from the cart line snapshot.
		var serviceType string
		s.db.Model(&models.ServiceCategory{}).
			Select("service_categories.type").
			Joins("JOIN services ON services.category_id = service_categories.id").
			Where("services.id = ?", line.ServiceID).
			Scan(&serviceType)

		items = append(items, models.TransactionItem{
			ServiceID:          line.ServiceID,
			ServiceName:        line.ServiceName,
			ServiceDescription: line.ServiceDescription,
			ServiceType:        serviceType,
			Icon:               line.Icon,
			UnitPrice:          line.UnitPrice,
			Quantity:           line.Quantity,
			Addons:             serializeAddons(line.Addons),
			TotalPrice:         total,
		})
	}

	tax := CalculateTax(subtotal)
	txn := models.Transaction{
		TransactionNumber: number,
		Status:            models.StatusPending,
		PaymentMethod:     methodHint,
		Subtotal:          subtotal,
		Tax:               tax,
		Total:             subtotal.Add(tax),
		CustomerName:      name,
		CustomerPhone:     customer.Phone,
		CustomerTIN:       customer.TIN,
		TransactionDate:   time.Now(),
		Items:             items,
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var existing int64
	if err := tx.Model(&models.Transaction{}).
		Where("transaction_number = ?", number).
		Count(&existing).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if existing > 0 {
		tx.Rollback()
		return nil, ErrDuplicateTransactionNumber
	}

	if err := tx.Create(&txn).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

// AddPaymentRecord appends a payment attempt to a transaction. A completed
// record also completes a pending (or previously failed) transaction and
// stamps its payment dates; the first completing record wins, later ones
// still append without restamping. A failed record moves a pending
// transaction to failed.
func (s *TransactionService) AddPaymentRecord(txnID uuid.UUID, method string, amount decimal.Decimal, status, referenceNumber, details string) (*models.PaymentRecord, error) {
	var txn models.Transaction
	if err := s.db.First(&txn, "id = ?", txnID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	now := time.Now()
	record := models.PaymentRecord{
		TransactionID:   txnID,
		Method:          method,
		Status:          status,
		Amount:          amount,
		ReferenceNumber: referenceNumber,
		PaymentDetails:  details,
		PaymentDate:     now,
	}
	if status == models.PaymentCompleted {
		record.CompletedDate = &now
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&record).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := applyPaymentOutcome(tx, &txn, method, status, now); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// applyPaymentOutcome moves the parent transaction in step with a payment
// record outcome. A completed payment completes a pending or failed
// transaction and stamps the dates exactly once; a failed payment fails a
// pending transaction. Terminal transactions are never restamped.
func applyPaymentOutcome(tx *gorm.DB, txn *models.Transaction, method, status string, now time.Time) error {
	switch {
	case status == models.PaymentCompleted &&
		(txn.Status == models.StatusPending || txn.Status == models.StatusFailed):
		return tx.Model(txn).Updates(map[string]interface{}{
			"status":         models.StatusCompleted,
			"payment_method": method,
			"payment_date":   now,
			"completed_date": now,
		}).Error
	case status == models.PaymentFailed && txn.Status == models.StatusPending:
		return tx.Model(txn).Update("status", models.StatusFailed).Error
	}
	return nil
}

// ProgressPaymentRecord moves a pending payment record to completed or
// failed, stamping its completion date and carrying the outcome over to the
// parent transaction in the same commit.
func (s *TransactionService) ProgressPaymentRecord(recordID uuid.UUID, status string, referenceNumber *string) (*models.PaymentRecord, error) {
	var record models.PaymentRecord
	if err := s.db.First(&record, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	if record.Status != models.PaymentPending {
		return nil, ErrInvalidState
	}

	var txn models.Transaction
	if err := s.db.First(&txn, "id = ?", record.TransactionID).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	record.Status = status
	if status == models.PaymentCompleted {
		record.CompletedDate = &now
	}
	if referenceNumber != nil {
		record.ReferenceNumber = *referenceNumber
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Save(&record).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := applyPaymentOutcome(tx, &txn, record.Method, status, now); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Complete finishes a pending checkout in one unit: validates the payment,
// marks the transaction completed with timestamps and appends the completed
// payment record. Cash payments must hand over at least the total; change
// is computed here.
func (s *TransactionService) Complete(txnID uuid.UUID, result PaymentResult) (*models.Transaction, error) {
	var txn models.Transaction
	if err := s.db.Preload("Items").First(&txn, "id = ?", txnID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	if txn.Status != models.StatusPending {
		return nil, ErrInvalidState
	}

	var change decimal.NullDecimal
	if result.Method == models.MethodCash {
		if !result.CashReceived.Valid {
			return nil, ErrInsufficientCash
		}
		if result.CashReceived.Decimal.LessThan(txn.Total) {
			return nil, ErrInsufficientCash
		}
		change = decimal.NullDecimal{
			Decimal: result.CashReceived.Decimal.Sub(txn.Total),
			Valid:   true,
		}
	}

	now := time.Now()

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	updates := map[string]interface{}{
		"status":         models.StatusCompleted,
		"payment_method": result.Method,
		"payment_date":   now,
		"completed_date": now,
	}
	if result.Method == models.MethodCash {
		updates["cash_received"] = result.CashReceived
		updates["change_due"] = change
	}
	if err := tx.Model(&txn).Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	record := models.PaymentRecord{
		TransactionID:   txn.ID,
		Method:          result.Method,
		Status:          models.PaymentCompleted,
		Amount:          txn.Total,
		ReferenceNumber: result.ReferenceNumber,
		PaymentDetails:  result.PaymentDetails,
		PaymentDate:     now,
		CompletedDate:   &now,
	}
	if err := tx.Create(&record).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.ByID(txn.ID)
}

// Cancel moves a pending transaction to cancelled. Any other state,
// including an unresolved id, is a no-op returning false.
func (s *TransactionService) Cancel(txnID uuid.UUID) (bool, error) {
	res := s.db.Model(&models.Transaction{}).
		Where("id = ? AND status = ?", txnID, models.StatusPending).
		Update("status", models.StatusCancelled)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Refund is the administrative completed -> refunded transition; it is not
// part of the checkout flow.
func (s *TransactionService) Refund(txnID uuid.UUID) (bool, error) {
	res := s.db.Model(&models.Transaction{}).
		Where("id = ? AND status = ?", txnID, models.StatusCompleted).
		Update("status", models.StatusRefunded)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Delete hard-deletes a pending transaction with its items and payment
// records. This is the cleanup path for abandoned checkouts. Completed sales
// are never deleted; any non-pending state returns false with every row intact.
func (s *TransactionService) Delete(txnID uuid.UUID) (bool, error) {
	var txn models.Transaction
	if err := s.db.First(&txn, "id = ?", txnID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if txn.Status != models.StatusPending {
		return false, nil
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("transaction_id = ?", txn.ID).Delete(&models.PaymentRecord{}).Error; err != nil {
		tx.Rollback()
		return false, err
	}
	if err := tx.Where("transaction_id = ?", txn.ID).Delete(&models.TransactionItem{}).Error; err != nil {
		tx.Rollback()
		return false, err
	}
	if err := tx.Delete(&txn).Error; err != nil {
		tx.Rollback()
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		return false, err
	}
	return true, nil
}

// DeleteStalePending removes pending transactions older than the given
// age. Used by the cleanup scheduler.
func (s *TransactionService) DeleteStalePending(olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	var stale []models.Transaction
	if err := s.db.Where("status = ? AND created_at < ?", models.StatusPending, cutoff).
		Find(&stale).Error; err != nil {
		return 0, err
	}

	deleted := 0
	for _, txn := range stale {
		ok, err := s.Delete(txn.ID)
		if err != nil {
			return deleted, err
		}
		if ok {
			deleted++
		}
	}
	return deleted, nil
}

// ByID resolves a transaction by surrogate key, items and payments loaded.
func (s *TransactionService) ByID(txnID uuid.UUID) (*models.Transaction, error) {
	var txn models.Transaction
	if err := s.db.Preload("Items").Preload("Payments").
		First(&txn, "id = ?", txnID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &txn, nil
}

// ByNumber resolves a transaction by its business number.
func (s *TransactionService) ByNumber(number string) (*models.Transaction, error) {
	var txn models.Transaction
	if err := s.db.Preload("Items").Preload("Payments").
		First(&txn, "transaction_number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &txn, nil
}

func (s *TransactionService) ByStatus(status string) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := s.db.Preload("Items").
		Where("status = ?", status).
		Order("transaction_date DESC").
		Find(&txns).Error
	return txns, err
}

// ByDateRange returns transactions between the start of the start day and
// the end of the end day, both inclusive.
func (s *TransactionService) ByDateRange(start, end time.Time) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := s.db.Preload("Items").
		Where("transaction_date BETWEEN ? AND ?", utils.BeginningOfDay(start), utils.EndOfDay(end)).
		Order("transaction_date DESC").
		Find(&txns).Error
	return txns, err
}

// List pages through transactions, newest first. Pages are 1-indexed.
func (s *TransactionService) List(page, pageSize int) ([]models.Transaction, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var total int64
	if err := s.db.Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txns []models.Transaction
	err := s.db.Preload("Items").
		Order("transaction_date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&txns).Error
	return txns, total, err
}

// Search matches a case-insensitive substring against the business number,
// customer name, TIN, phone and item service names.
func (s *TransactionService) Search(query string) ([]models.Transaction, error) {
	q := "%" + strings.ToLower(query) + "%"
	var txns []models.Transaction
	err := s.db.Preload("Items").
		Where(`LOWER(transaction_number) LIKE ? OR LOWER(customer_name) LIKE ?
			OR LOWER(customer_tin) LIKE ? OR LOWER(customer_phone) LIKE ?
			OR id IN (SELECT transaction_id FROM transaction_items WHERE LOWER(service_name) LIKE ?)`,
			q, q, q, q, q).
		Order("transaction_date DESC").
		Find(&txns).Error
	return txns, err
}

// DailySales sums the totals of completed transactions on one day. The sum
// runs over the decimal fields in Go so money never passes through a float.
func (s *TransactionService) DailySales(date time.Time) (decimal.Decimal, error) {
	return s.sumCompleted(utils.BeginningOfDay(date), utils.EndOfDay(date))
}

// MonthlySales sums the totals of completed transactions in one month.
func (s *TransactionService) MonthlySales(year int, month time.Month) (decimal.Decimal, error) {
	return s.sumCompleted(utils.BeginningOfMonth(year, month), utils.EndOfMonth(year, month))
}

func (s *TransactionService) sumCompleted(start, end time.Time) (decimal.Decimal, error) {
	var txns []models.Transaction
	if err := s.db.
		Where("status = ? AND transaction_date BETWEEN ? AND ?", models.StatusCompleted, start, end).
		Find(&txns).Error; err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, t := range txns {
		sum = sum.Add(t.Total)
	}
	return sum, nil
}

// CountByDateRange counts transactions, optionally bounded on either side.
func (s *TransactionService) CountByDateRange(start, end *time.Time) (int64, error) {
	query := s.db.Model(&models.Transaction{})
	if start != nil {
		query = query.Where("transaction_date >= ?", utils.BeginningOfDay(*start))
	}
	if end != nil {
		query = query.Where("transaction_date <= ?", utils.EndOfDay(*end))
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}
