package services

import (
	"fmt"
	"testing"
	"time"

	"laundrypos-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.ServiceCategory{},
		&models.Service{},
		&models.Transaction{},
		&models.TransactionItem{},
		&models.PaymentRecord{},
		&models.ReceiptLog{},
	))
	return db
}

func seedCatalogService(t *testing.T, db *gorm.DB, name string, price int64) models.Service {
	t.Helper()
	category := models.ServiceCategory{
		Type:     models.CategoryWashing,
		NameEn:   "Washing",
		IsActive: true,
	}
	require.NoError(t, db.Create(&category).Error)

	service := models.Service{
		CategoryID:  category.ID,
		NameEn:      name,
		Price:       decimal.NewFromInt(price),
		IsAvailable: true,
	}
	require.NoError(t, db.Create(&service).Error)
	return service
}

func lineFor(service models.Service, quantity int) CartLine {
	return CartLine{
		ID:          uuid.NewString(),
		ServiceID:   service.ID,
		ServiceName: service.NameEn,
		UnitPrice:   service.Price,
		Quantity:    quantity,
	}
}

func TestCreatePendingPersistsSnapshot(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	txn, err := svc.CreatePending([]CartLine{lineFor(wash, 2)}, CustomerInfo{Name: "Alice"}, models.MethodCash)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, txn.Status)
	assert.True(t, txn.Subtotal.Equal(decimal.NewFromInt(10000)), "subtotal %s", txn.Subtotal)
	assert.True(t, txn.Tax.Equal(decimal.NewFromInt(1000)), "tax %s", txn.Tax)
	assert.True(t, txn.Total.Equal(decimal.NewFromInt(11000)), "total %s", txn.Total)
	assert.Regexp(t, `^T-\d{6}-\d{4}$`, txn.TransactionNumber)

	var items []models.TransactionItem
	require.NoError(t, db.Where("transaction_id = ?", txn.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, "Hot Wash", items[0].ServiceName)
	assert.Equal(t, models.CategoryWashing, items[0].ServiceType)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestItemSnapshotSurvivesCatalogEdits(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	txn, err := svc.CreatePending([]CartLine{lineFor(wash, 1)}, CustomerInfo{}, "")
	require.NoError(t, err)

	// Catalog price change after checkout must not leak into history.
	require.NoError(t, db.Model(&models.Service{}).
		Where("id = ?", wash.ID).
		Update("price", decimal.NewFromInt(9999)).Error)

	var item models.TransactionItem
	require.NoError(t, db.First(&item, "transaction_id = ?", txn.ID).Error)
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromInt(5000)))
}

func TestCreatePendingCountsMatchCartLines(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)
	dry := models.Service{CategoryID: wash.CategoryID, NameEn: "Express Dry", Price: decimal.NewFromInt(4000), IsAvailable: true}
	require.NoError(t, db.Create(&dry).Error)

	lines := []CartLine{lineFor(wash, 1), lineFor(dry, 3)}
	txn, err := svc.CreatePending(lines, CustomerInfo{}, "")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.TransactionItem{}).
		Where("transaction_id = ?", txn.ID).Count(&count).Error)
	assert.EqualValues(t, len(lines), count)
}

func TestCreatePendingEmptyCart(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)

	_, err := svc.CreatePending(nil, CustomerInfo{}, "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCreatePendingDefaultsWalkInCustomer(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	txn, err := svc.CreatePending([]CartLine{lineFor(wash, 1)}, CustomerInfo{}, "")
	require.NoError(t, err)
	assert.Equal(t, "Walk-in Customer", txn.CustomerName)
}

func TestDuplicateTransactionNumberInsertsNothing(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	_, err := svc.CreatePendingWithNumber("T-123456-7890", []CartLine{lineFor(wash, 1)}, CustomerInfo{}, "")
	require.NoError(t, err)

	_, err = svc.CreatePendingWithNumber("T-123456-7890", []CartLine{lineFor(wash, 2)}, CustomerInfo{}, "")
	assert.ErrorIs(t, err, ErrDuplicateTransactionNumber)

	var txnCount, itemCount int64
	db.Model(&models.Transaction{}).Count(&txnCount)
	db.Model(&models.TransactionItem{}).Count(&itemCount)
	assert.EqualValues(t, 1, txnCount)
	assert.EqualValues(t, 1, itemCount)
}

func TestCompleteCashPayment(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	txn, err := svc.CreatePending([]CartLine{lineFor(wash, 2)}, CustomerInfo{}, models.MethodCash)
	require.NoError(t, err)

	completed, err := svc.Complete(txn.ID, PaymentResult{
		Method:       models.MethodCash,
		CashReceived: decimal.NewNullDecimal(decimal.NewFromInt(15000)),
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, completed.Status)
	assert.Equal(t, models.MethodCash, completed.PaymentMethod)
	require.True(t, completed.ChangeDue.Valid)
	assert.True(t, completed.ChangeDue.Decimal.Equal(decimal.NewFromInt(4000)), "change %s", completed.ChangeDue.Decimal)
	assert.NotNil(t, completed.PaymentDate)
	assert.NotNil(t, completed.CompletedDate)
	require.Len(t, completed.Payments, 1)
	assert.Equal(t, models.PaymentCompleted, completed.Payments[0].Status)
}

func TestCompleteRejectsInsufficientCash(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	txn, err := svc.CreatePending([]CartLine{lineFor(wash, 2)}, CustomerInfo{}, models.MethodCash)
	require.NoError(t, err)

	_, err = svc.Complete(txn.ID, PaymentResult{
		Method:       models.MethodCash,
		CashReceived: decimal.NewNullDecimal(decimal.NewFromInt(10000)),
	})
	assert.ErrorIs(t, err, ErrInsufficientCash)

	// Rejection happens before any write.
	fresh, err := svc.ByID(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, fresh.Status)
	assert.Empty(t, fresh.Payments)
}

func TestCompleteOnlyReachableFromPending(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	txn, err := svc.CreatePending([]CartLine{lineFor(wash, 1)}, CustomerInfo{}, models.MethodMoMo)
	require.NoError(t, err)

	_, err = svc.Complete(txn.ID, PaymentResult{Method: models.MethodMoMo, ReferenceNumber: "MM-1"})
	require.NoError(t, err)

	_, err = svc.Complete(txn.ID, PaymentResult{Method: models.MethodCard})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCompleteUnknownTransaction(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)

	_, err := svc.Complete(uuid.New(), PaymentResult{Method: models.MethodCard})
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestCancelOnlyPending(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	txn, err := svc.CreatePending([]CartLine{lineFor(wash, 1)}, CustomerInfo{}, "")
	require.NoError(t, err)

	ok, err := svc.Cancel(txn.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// Terminal state: a second cancel is a no-op, not a state overwrite.
	ok, err = svc.Cancel(txn.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	fresh, err := svc.ByID(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, fresh.Status)
}

func TestCancelUnknownID(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)

	ok, err := svc.Cancel(uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRefundOnlyCompleted(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	txn, err := svc.CreatePending([]CartLine{lineFor(wash, 1)}, CustomerInfo{}, "")
	require.NoError(t, err)

	ok, err := svc.Refund(txn.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.Complete(txn.ID, PaymentResult{Method: models.MethodCard})
	require.NoError(t, err)

	ok, err = svc.Refund(txn.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeletePendingCascades(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	txn, err := svc.CreatePending([]CartLine{lineFor(wash, 2)}, CustomerInfo{}, "")
	require.NoError(t, err)
	_, err = svc.AddPaymentRecord(txn.ID, models.MethodCard, txn.Total, models.PaymentPending, "", "")
	require.NoError(t, err)

	ok, err := svc.Delete(txn.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	var txnCount, itemCount, paymentCount int64
	db.Model(&models.Transaction{}).Count(&txnCount)
	db.Model(&models.TransactionItem{}).Count(&itemCount)
	db.Model(&models.PaymentRecord{}).Count(&paymentCount)
	assert.Zero(t, txnCount)
	assert.Zero(t, itemCount)
	assert.Zero(t, paymentCount)
}

func TestDeleteRefusesNonPending(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	txn, err := svc.CreatePending([]CartLine{lineFor(wash, 1)}, CustomerInfo{}, "")
	require.NoError(t, err)
	_, err = svc.Complete(txn.ID, PaymentResult{Method: models.MethodCard})
	require.NoError(t, err)

	ok, err := svc.Delete(txn.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// Every row stays intact.
	var txnCount, itemCount, paymentCount int64
	db.Model(&models.Transaction{}).Count(&txnCount)
	db.Model(&models.TransactionItem{}).Count(&itemCount)
	db.Model(&models.PaymentRecord{}).Count(&paymentCount)
	assert.EqualValues(t, 1, txnCount)
	assert.EqualValues(t, 1, itemCount)
	assert.EqualValues(t, 1, paymentCount)
}

func TestAddPaymentRecordCompletesParentOnce(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	txn, err := svc.CreatePending([]CartLine{lineFor(wash, 1)}, CustomerInfo{}, "")
	require.NoError(t, err)

	_, err = svc.AddPaymentRecord(txn.ID, models.MethodMoMo, txn.Total, models.PaymentCompleted, "MM-1", "")
	require.NoError(t, err)

	first, err := svc.ByID(txn.ID)
	require.NoError(t, err)
	require.NotNil(t, first.CompletedDate)
	firstStamp := *first.CompletedDate

	// A second completing record appends but never restamps.
	_, err = svc.AddPaymentRecord(txn.ID, models.MethodCash, txn.Total, models.PaymentCompleted, "", "")
	require.NoError(t, err)

	second, err := svc.ByID(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, second.Status)
	require.Len(t, second.Payments, 2)
	require.NotNil(t, second.CompletedDate)
	assert.True(t, second.CompletedDate.Equal(firstStamp))
	assert.Equal(t, models.MethodMoMo, second.PaymentMethod)
}

func TestFailedPaymentThenSuccessfulRetry(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	txn, err := svc.CreatePending([]CartLine{lineFor(wash, 1)}, CustomerInfo{}, "")
	require.NoError(t, err)

	_, err = svc.AddPaymentRecord(txn.ID, models.MethodCard, txn.Total, models.PaymentFailed, "", "declined")
	require.NoError(t, err)

	failed, err := svc.ByID(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, failed.Status)

	_, err = svc.AddPaymentRecord(txn.ID, models.MethodCash, txn.Total, models.PaymentCompleted, "", "")
	require.NoError(t, err)

	recovered, err := svc.ByID(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, recovered.Status)
	assert.Len(t, recovered.Payments, 2)
}

func TestAddPaymentRecordUnknownTransaction(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)

	_, err := svc.AddPaymentRecord(uuid.New(), models.MethodCash, decimal.NewFromInt(100), models.PaymentCompleted, "", "")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestProgressPaymentRecordCompletesParent(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	txn, err := svc.CreatePending([]CartLine{lineFor(wash, 1)}, CustomerInfo{}, "")
	require.NoError(t, err)

	record, err := svc.AddPaymentRecord(txn.ID, models.MethodMoMo, txn.Total, models.PaymentPending, "", "")
	require.NoError(t, err)

	ref := "MM-42"
	progressed, err := svc.ProgressPaymentRecord(record.ID, models.PaymentCompleted, &ref)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, progressed.Status)
	assert.Equal(t, "MM-42", progressed.ReferenceNumber)
	assert.NotNil(t, progressed.CompletedDate)

	parent, err := svc.ByID(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, parent.Status)

	// Completed records never progress again.
	_, err = svc.ProgressPaymentRecord(record.ID, models.PaymentFailed, nil)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestByNumberAndByStatus(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	txn, err := svc.CreatePendingWithNumber("T-000001-0001", []CartLine{lineFor(wash, 1)}, CustomerInfo{}, "")
	require.NoError(t, err)

	byNumber, err := svc.ByNumber("T-000001-0001")
	require.NoError(t, err)
	assert.Equal(t, txn.ID, byNumber.ID)

	_, err = svc.ByNumber("T-999999-9999")
	assert.ErrorIs(t, err, ErrTransactionNotFound)

	pending, err := svc.ByStatus(models.StatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	completed, err := svc.ByStatus(models.StatusCompleted)
	require.NoError(t, err)
	assert.Empty(t, completed)
}

func TestByDateRangeIncludesEndOfDay(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	txn, err := svc.CreatePending([]CartLine{lineFor(wash, 1)}, CustomerInfo{}, "")
	require.NoError(t, err)

	evening := time.Date(2026, 3, 10, 22, 45, 0, 0, time.Local)
	require.NoError(t, db.Model(&models.Transaction{}).
		Where("id = ?", txn.ID).
		Update("transaction_date", evening).Error)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	found, err := svc.ByDateRange(day, day)
	require.NoError(t, err)
	assert.Len(t, found, 1)

	before, err := svc.ByDateRange(day.AddDate(0, 0, -2), day.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Empty(t, before)
}

func TestListPagination(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	for i := 0; i < 5; i++ {
		txn, err := svc.CreatePending([]CartLine{lineFor(wash, 1)}, CustomerInfo{}, "")
		require.NoError(t, err)
		// Distinct dates keep the newest-first ordering deterministic.
		require.NoError(t, db.Model(&models.Transaction{}).
			Where("id = ?", txn.ID).
			Update("transaction_date", time.Now().Add(time.Duration(i)*time.Minute)).Error)
	}

	page1, total, err := svc.List(1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, page1, 2)

	page3, _, err := svc.List(3, 2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)

	assert.True(t, page1[0].TransactionDate.After(page1[1].TransactionDate))
}

func TestSearchMatchesCustomerAndItemNames(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	_, err := svc.CreatePending([]CartLine{lineFor(wash, 1)},
		CustomerInfo{Name: "Jean Mugisha", Phone: "+250788123456", TIN: "TIN-100"}, "")
	require.NoError(t, err)

	byName, err := svc.Search("mugisha")
	require.NoError(t, err)
	assert.Len(t, byName, 1)

	byItem, err := svc.Search("hot wash")
	require.NoError(t, err)
	assert.Len(t, byItem, 1)

	byTIN, err := svc.Search("tin-100")
	require.NoError(t, err)
	assert.Len(t, byTIN, 1)

	nothing, err := svc.Search("dry cleaning")
	require.NoError(t, err)
	assert.Empty(t, nothing)
}

func TestDailySalesSumsCompletedOnly(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)

	day := time.Date(2026, 5, 20, 12, 0, 0, 0, time.Local)
	rows := []models.Transaction{
		{TransactionNumber: "T-1", Status: models.StatusCompleted, Subtotal: decimal.NewFromInt(91), Tax: decimal.NewFromInt(9), Total: decimal.NewFromInt(100), TransactionDate: day},
		{TransactionNumber: "T-2", Status: models.StatusCompleted, Subtotal: decimal.NewFromInt(182), Tax: decimal.NewFromInt(18), Total: decimal.NewFromInt(200), TransactionDate: day},
		{TransactionNumber: "T-3", Status: models.StatusCompleted, Subtotal: decimal.NewFromInt(273), Tax: decimal.NewFromInt(27), Total: decimal.NewFromInt(300), TransactionDate: day},
		{TransactionNumber: "T-4", Status: models.StatusPending, Subtotal: decimal.NewFromInt(900), Tax: decimal.NewFromInt(90), Total: decimal.NewFromInt(990), TransactionDate: day},
		{TransactionNumber: "T-5", Status: models.StatusPending, Subtotal: decimal.NewFromInt(450), Tax: decimal.NewFromInt(45), Total: decimal.NewFromInt(495), TransactionDate: day},
	}
	require.NoError(t, db.Create(&rows).Error)

	total, err := svc.DailySales(day)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(600)), "total %s", total)

	other, err := svc.DailySales(day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, other.IsZero())
}

func TestMonthlySales(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)

	inMay := time.Date(2026, 5, 3, 9, 0, 0, 0, time.Local)
	inJune := time.Date(2026, 6, 1, 9, 0, 0, 0, time.Local)
	rows := []models.Transaction{
		{TransactionNumber: "T-10", Status: models.StatusCompleted, Subtotal: decimal.NewFromInt(1000), Tax: decimal.NewFromInt(100), Total: decimal.NewFromInt(1100), TransactionDate: inMay},
		{TransactionNumber: "T-11", Status: models.StatusCompleted, Subtotal: decimal.NewFromInt(2000), Tax: decimal.NewFromInt(200), Total: decimal.NewFromInt(2200), TransactionDate: inMay},
		{TransactionNumber: "T-12", Status: models.StatusCompleted, Subtotal: decimal.NewFromInt(5000), Tax: decimal.NewFromInt(500), Total: decimal.NewFromInt(5500), TransactionDate: inJune},
	}
	require.NoError(t, db.Create(&rows).Error)

	total, err := svc.MonthlySales(2026, time.May)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(3300)), "total %s", total)
}

func TestCountByDateRangeOptionalBounds(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)

	early := time.Date(2026, 1, 5, 10, 0, 0, 0, time.Local)
	late := time.Date(2026, 2, 5, 10, 0, 0, 0, time.Local)
	rows := []models.Transaction{
		{TransactionNumber: "T-20", Status: models.StatusCompleted, Subtotal: decimal.Zero, Tax: decimal.Zero, Total: decimal.Zero, TransactionDate: early},
		{TransactionNumber: "T-21", Status: models.StatusPending, Subtotal: decimal.Zero, Tax: decimal.Zero, Total: decimal.Zero, TransactionDate: late},
	}
	require.NoError(t, db.Create(&rows).Error)

	all, err := svc.CountByDateRange(nil, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, all)

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local)
	onlyLate, err := svc.CountByDateRange(&from, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, onlyLate)

	until := time.Date(2026, 1, 31, 0, 0, 0, 0, time.Local)
	onlyEarly, err := svc.CountByDateRange(nil, &until)
	require.NoError(t, err)
	assert.EqualValues(t, 1, onlyEarly)
}

func TestDeleteStalePending(t *testing.T) {
	db := testDB(t)
	svc := NewTransactionService(db)
	wash := seedCatalogService(t, db, "Hot Wash", 5000)

	stale, err := svc.CreatePending([]CartLine{lineFor(wash, 1)}, CustomerInfo{}, "")
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Transaction{}).
		Where("id = ?", stale.ID).
		Update("created_at", time.Now().Add(-48*time.Hour)).Error)

	fresh, err := svc.CreatePending([]CartLine{lineFor(wash, 1)}, CustomerInfo{}, "")
	require.NoError(t, err)

	deleted, err := svc.DeleteStalePending(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = svc.ByID(fresh.ID)
	assert.NoError(t, err)
	_, err = svc.ByID(stale.ID)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}
