// controllers/payment_record.go
package controllers

import (
	"errors"
	"net/http"
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

// CreatePaymentRecordInput defines the expected JSON structure for
// recording a payment attempt
type CreatePaymentRecordInput struct {
	TransactionID   uuid.UUID       `json:"transactionId" binding:"required"`
	Method          string          `json:"method" binding:"required,oneof=cash momo card"`
	Status          string          `json:"status" binding:"required,oneof=pending completed failed"`
	Amount          decimal.Decimal `json:"amount"`
	ReferenceNumber string          `json:"referenceNumber"`
	PaymentDetails  string          `json:"paymentDetails"`
}

// UpdatePaymentRecordInput allows only status progression and reference
// stamping; historical rows are otherwise immutable
type UpdatePaymentRecordInput struct {
	Status          *string `json:"status" binding:"omitempty,oneof=completed failed"`
	ReferenceNumber *string `json:"referenceNumber"`
}

// CreatePaymentRecord appends a payment attempt to a transaction. A
// completed record also completes the parent transaction.
func CreatePaymentRecord(c *gin.Context) {
	var input CreatePaymentRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Amount.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Amount must not be negative")
		return
	}

	record, err := services.NewTransactionService(config.DB).AddPaymentRecord(
		input.TransactionID, input.Method, input.Amount, input.Status,
		input.ReferenceNumber, input.PaymentDetails)
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create payment record")
		}
		return
	}

	utils.RespondWithData(c, http.StatusCreated, record)
}

// GetPaymentRecords retrieves all payment records, newest first
func GetPaymentRecords(c *gin.Context) {
	var records []models.PaymentRecord
	if err := config.DB.Order("payment_date DESC").Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payment records")
		return
	}

	utils.RespondWithData(c, http.StatusOK, records)
}

// GetPaymentRecord retrieves a specific payment record by ID
func GetPaymentRecord(c *gin.Context) {
	recordUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment record ID format")
		return
	}

	var record models.PaymentRecord
	if err := config.DB.First(&record, "id = ?", recordUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Payment record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, record)
}

// GetPaymentRecordsByTransaction lists payment attempts for one transaction
func GetPaymentRecordsByTransaction(c *gin.Context) {
	txnUUID, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	var records []models.PaymentRecord
	if err := config.DB.Where("transaction_id = ?", txnUUID).
		Order("payment_date ASC").Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payment records")
		return
	}

	utils.RespondWithData(c, http.StatusOK, records)
}

// GetPaymentRecordsByStatus lists payment records in one state
func GetPaymentRecordsByStatus(c *gin.Context) {
	status := c.Param("status")
	switch status {
	case models.PaymentPending, models.PaymentCompleted, models.PaymentFailed:
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown status: "+status)
		return
	}

	var records []models.PaymentRecord
	if err := config.DB.Where("status = ?", status).
		Order("payment_date DESC").Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payment records")
		return
	}

	utils.RespondWithData(c, http.StatusOK, records)
}

// GetPaymentRecordsByDateRange lists payment records between two dates,
// both inclusive
func GetPaymentRecordsByDateRange(c *gin.Context) {
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

	var records []models.PaymentRecord
	if err := config.DB.
		Where("payment_date BETWEEN ? AND ?", utils.BeginningOfDay(start), utils.EndOfDay(end)).
		Order("payment_date DESC").Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payment records")
		return
	}

	utils.RespondWithData(c, http.StatusOK, records)
}

// UpdatePaymentRecord progresses a pending record to completed or failed
// and stamps the completion date. Nothing else on the row is editable.
func UpdatePaymentRecord(c *gin.Context) {
	recordUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment record ID format")
		return
	}

	var input UpdatePaymentRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Status == nil && input.ReferenceNumber == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Update payload is empty")
		return
	}

	if input.Status == nil {
		// Reference-only touch-up on a pending record.
		var record models.PaymentRecord
		if err := config.DB.First(&record, "id = ?", recordUUID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Payment record not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		if record.Status != models.PaymentPending {
			utils.RespondWithError(c, http.StatusBadRequest, "Completed payment records are immutable")
			return
		}
		record.ReferenceNumber = *input.ReferenceNumber
		if err := config.DB.Save(&record).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update payment record")
			return
		}
		utils.RespondWithData(c, http.StatusOK, record)
		return
	}

	record, err := services.NewTransactionService(config.DB).
		ProgressPaymentRecord(recordUUID, *input.Status, input.ReferenceNumber)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Payment record not found")
		case errors.Is(err, services.ErrInvalidState):
			utils.RespondWithError(c, http.StatusBadRequest, "Only pending payment records can progress")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update payment record")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, record)
}

// DeletePaymentRecord always refuses: the payment log is append-only.
func DeletePaymentRecord(c *gin.Context) {
	utils.RespondWithError(c, http.StatusBadRequest, "Payment records are append-only and cannot be deleted")
}
