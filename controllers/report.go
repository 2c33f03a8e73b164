// controllers/report.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"laundrypos-backend/config"
	"laundrypos-backend/services"
	"laundrypos-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReportController handles the read-only reporting surface
type ReportController struct{}

// GetDailySales sums completed transaction totals for one day
func (rc *ReportController) GetDailySales(c *gin.Context) {
	date := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.ParseInLocation(dateLayout, q, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	total, err := services.NewTransactionService(config.DB).DailySales(date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute daily sales")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{
		"date":  date.Format(dateLayout),
		"total": total,
	})
}

// GetMonthlySales sums completed transaction totals for one month
func (rc *ReportController) GetMonthlySales(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if q := c.Query("year"); q != "" {
		y, err := strconv.Atoi(q)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid year")
			return
		}
		year = y
	}
	if q := c.Query("month"); q != "" {
		m, err := strconv.Atoi(q)
		if err != nil || m < 1 || m > 12 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid month, expected 1-12")
			return
		}
		month = time.Month(m)
	}

	total, err := services.NewTransactionService(config.DB).MonthlySales(year, month)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute monthly sales")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{
		"year":  year,
		"month": int(month),
		"total": total,
	})
}

// GetTransactionCount counts transactions, each bound optional
func (rc *ReportController) GetTransactionCount(c *gin.Context) {
	var start, end *time.Time

	if q := c.Query("startDate"); q != "" {
		parsed, err := time.ParseInLocation(dateLayout, q, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid startDate, expected YYYY-MM-DD")
			return
		}
		start = &parsed
	}
	if q := c.Query("endDate"); q != "" {
		parsed, err := time.ParseInLocation(dateLayout, q, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid endDate, expected YYYY-MM-DD")
			return
		}
		end = &parsed
	}

	count, err := services.NewTransactionService(config.DB).CountByDateRange(start, end)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count transactions")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"count": count})
}

// SearchTransactions free-text searches transactions. The result degrades
// to an empty list rather than an error when nothing matches.
func (rc *ReportController) SearchTransactions(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	txns, err := services.NewTransactionService(config.DB).Search(query)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Search failed")
		return
	}

	utils.RespondWithData(c, http.StatusOK, txns)
}
