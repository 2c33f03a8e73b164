// controllers/transaction.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"laundrypos-backend/config"
	"laundrypos-backend/models"
	"laundrypos-backend/services"
	"laundrypos-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

func txnService() *services.TransactionService {
	return services.NewTransactionService(config.DB)
}

// AddonInput is one add-on chosen for a transaction line
type AddonInput struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"`
}

// TransactionItemInput defines one cart line in a checkout payload
type TransactionItemInput struct {
	ServiceID uuid.UUID    `json:"serviceId" binding:"required"`
	Quantity  int          `json:"quantity" binding:"min=1"`
	Addons    []AddonInput `json:"addons"`
}

// CreateTransactionInput defines the expected JSON structure for opening a
// pending transaction from a cart snapshot
type CreateTransactionInput struct {
	TransactionNumber string                 `json:"transactionNumber"`
	Items             []TransactionItemInput `json:"items" binding:"required,min=1"`
	CustomerName      string                 `json:"customerName"`
	CustomerPhone     string                 `json:"customerPhone"`
	CustomerTIN       string                 `json:"customerTin"`
	PaymentMethod     string                 `json:"paymentMethod" binding:"omitempty,oneof=cash momo card"`
}

// UpdateTransactionInput defines the fields editable while a transaction is
// still pending
type UpdateTransactionInput struct {
	CustomerName  *string `json:"customerName"`
	CustomerPhone *string `json:"customerPhone"`
	CustomerTIN   *string `json:"customerTin"`
	PaymentMethod *string `json:"paymentMethod" binding:"omitempty,oneof=cash momo card"`
}

func (in UpdateTransactionInput) empty() bool {
	return in.CustomerName == nil && in.CustomerPhone == nil &&
		in.CustomerTIN == nil && in.PaymentMethod == nil
}

// CompleteTransactionInput defines the payment capture payload
type CompleteTransactionInput struct {
	Method          string              `json:"method" binding:"required,oneof=cash momo card"`
	CashReceived    decimal.NullDecimal `json:"cashReceived"`
	ReferenceNumber string              `json:"referenceNumber"`
	PaymentDetails  string              `json:"paymentDetails"`
}

// CreateTransaction opens a pending transaction from a cart snapshot. Unit
// prices are frozen from the catalog at this moment; totals are recomputed
// server-side.
func CreateTransaction(c *gin.Context) {
	var input CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	lines := make([]services.CartLine, 0, len(input.Items))
	for _, item := range input.Items {
		var service models.Service
		if err := config.DB.First(&service, "id = ?", item.ServiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Service not found: "+item.ServiceID.String())
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}

		addons := make([]services.CartAddon, 0, len(item.Addons))
		for _, a := range item.Addons {
			if a.Price.IsNegative() {
				utils.RespondWithError(c, http.StatusBadRequest, "Add-on price must not be negative")
				return
			}
			addons = append(addons, services.CartAddon{Name: a.Name, Price: a.Price})
		}

		lines = append(lines, services.CartLine{
			ID:                 uuid.NewString(),
			ServiceID:          service.ID,
			ServiceName:        service.NameEn,
			ServiceDescription: service.DescriptionEn,
			Icon:               service.Icon,
			UnitPrice:          service.Price,
			Quantity:           item.Quantity,
			Addons:             addons,
		})
	}

	customer := services.CustomerInfo{
		Name:  input.CustomerName,
		Phone: input.CustomerPhone,
		TIN:   input.CustomerTIN,
	}

	var txn *models.Transaction
	var err error
	if input.TransactionNumber != "" {
		txn, err = txnService().CreatePendingWithNumber(input.TransactionNumber, lines, customer, input.PaymentMethod)
	} else {
		txn, err = txnService().CreatePending(lines, customer, input.PaymentMethod)
	}
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateTransactionNumber) && input.TransactionNumber != "":
			utils.RespondWithError(c, http.StatusConflict, "Transaction number already exists")
		case errors.Is(err, services.ErrEmptyCart):
			utils.RespondWithError(c, http.StatusBadRequest, "Cart has no lines")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create transaction")
		}
		return
	}

	utils.RespondWithData(c, http.StatusCreated, txn)
}

// GetTransactions pages through transactions, newest first
func GetTransactions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	txns, total, err := txnService().List(page, pageSize)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{
		"transactions": txns,
		"total":        total,
		"page":         page,
		"pageSize":     pageSize,
	})
}

// GetTransaction retrieves a transaction by surrogate id
func GetTransaction(c *gin.Context) {
	txnUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	txn, err := txnService().ByID(txnUUID)
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, txn)
}

// GetTransactionByNumber retrieves a transaction by its business number
func GetTransactionByNumber(c *gin.Context) {
	txn, err := txnService().ByNumber(c.Param("transactionId"))
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, txn)
}

// GetTransactionsByStatus lists transactions in one lifecycle state
func GetTransactionsByStatus(c *gin.Context) {
	status := c.Param("status")
	switch status {
	case models.StatusPending, models.StatusCompleted, models.StatusCancelled,
		models.StatusRefunded, models.StatusFailed:
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown status: "+status)
		return
	}

	txns, err := txnService().ByStatus(status)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	utils.RespondWithData(c, http.StatusOK, txns)
}

// GetTransactionsByDateRange lists transactions between two dates, both
// inclusive (the end date runs to end of day)
func GetTransactionsByDateRange(c *gin.Context) {
	start, err := time.ParseInLocation(dateLayout, c.Query("startDate"), time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid startDate, expected YYYY-MM-DD")
		return
	}
	end, err := time.ParseInLocation(dateLayout, c.Query("endDate"), time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid endDate, expected YYYY-MM-DD")
		return
	}

	txns, err := txnService().ByDateRange(start, end)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	utils.RespondWithData(c, http.StatusOK, txns)
}

// UpdateTransaction edits the customer block of a pending transaction
func UpdateTransaction(c *gin.Context) {
	txnUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	var input UpdateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.empty() {
		utils.RespondWithError(c, http.StatusBadRequest, "Update payload is empty")
		return
	}

	var txn models.Transaction
	if err := config.DB.First(&txn, "id = ?", txnUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	if txn.Status != models.StatusPending {
		utils.RespondWithError(c, http.StatusBadRequest, "Only pending transactions can be updated")
		return
	}

	if input.CustomerName != nil {
		txn.CustomerName = *input.CustomerName
	}
	if input.CustomerPhone != nil {
		txn.CustomerPhone = *input.CustomerPhone
	}
	if input.CustomerTIN != nil {
		txn.CustomerTIN = *input.CustomerTIN
	}
	if input.PaymentMethod != nil {
		txn.PaymentMethod = *input.PaymentMethod
	}

	if err := config.DB.Save(&txn).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update transaction")
		return
	}

	utils.RespondWithData(c, http.StatusOK, txn)
}

// CompleteTransaction captures the payment and finishes the checkout
func CompleteTransaction(c *gin.Context) {
	txnUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	var input CompleteTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	txn, err := txnService().Complete(txnUUID, services.PaymentResult{
		Method:          input.Method,
		CashReceived:    input.CashReceived,
		ReferenceNumber: input.ReferenceNumber,
		PaymentDetails:  input.PaymentDetails,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTransactionNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		case errors.Is(err, services.ErrInsufficientCash):
			utils.RespondWithError(c, http.StatusBadRequest, "Cash received is less than the total due")
		case errors.Is(err, services.ErrInvalidState):
			// Boolean no-op, not an exception: the transaction was
			// already in a terminal state.
			utils.RespondWithError(c, http.StatusOK, "Transaction is not pending")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to complete transaction")
		}
		return
	}

	// Receipt delivery never blocks the checkout.
	go services.NewReceiptService(config.DB).SendReceipt(txn)

	utils.RespondWithData(c, http.StatusOK, txn)
}

// CancelTransaction moves a pending transaction to cancelled
func CancelTransaction(c *gin.Context) {
	txnUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	ok, err := txnService().Cancel(txnUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel transaction")
		return
	}
	if !ok {
		utils.RespondWithError(c, http.StatusOK, "Transaction is not pending")
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Transaction cancelled")
}

// RefundTransaction is the administrative completed -> refunded transition
func RefundTransaction(c *gin.Context) {
	txnUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	ok, err := txnService().Refund(txnUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to refund transaction")
		return
	}
	if !ok {
		utils.RespondWithError(c, http.StatusOK, "Transaction is not completed")
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Transaction refunded")
}

// DeleteTransaction hard-deletes a pending transaction with its items and
// payment records; anything non-pending is left intact
func DeleteTransaction(c *gin.Context) {
	txnUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	ok, err := txnService().Delete(txnUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}
	if !ok {
		utils.RespondWithError(c, http.StatusOK, "Transaction is not pending or does not exist")
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Transaction deleted successfully")
}
