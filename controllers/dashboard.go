// controllers/dashboard.go
package controllers

import (
	"net/http"
	"sort"
	"time"

	"laundrypos-backend/config"
	"laundrypos-backend/models"
	"laundrypos-backend/services"
	"laundrypos-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DashboardOverview struct {
	TodaySales        decimal.Decimal  `json:"todaySales"`
	MonthSales        decimal.Decimal  `json:"monthSales"`
	TodayTransactions int64            `json:"todayTransactions"`
	PendingCount      int64            `json:"pendingCount"`
	StatusCounts      map[string]int64 `json:"statusCounts"`
	TopServices       []ServiceSummary `json:"topServices"`
}

type ServiceSummary struct {
	Name    string          `json:"name"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// GetDashboardOverview returns the till-side summary for the current day
// and month
func GetDashboardOverview(c *gin.Context) {
	txns := services.NewTransactionService(config.DB)
	now := time.Now()

	todaySales, err := txns.DailySales(now)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute today's sales")
		return
	}

	monthSales, err := txns.MonthlySales(now.Year(), now.Month())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute monthly sales")
		return
	}

	today := utils.BeginningOfDay(now)
	var todayCount int64
	config.DB.Model(&models.Transaction{}).
		Where("transaction_date >= ?", today).
		Count(&todayCount)

	statusCounts := map[string]int64{}
	for _, status := range []string{
		models.StatusPending, models.StatusCompleted, models.StatusCancelled,
		models.StatusRefunded, models.StatusFailed,
	} {
		var count int64
		config.DB.Model(&models.Transaction{}).
			Where("status = ?", status).
			Count(&count)
		statusCounts[status] = count
	}

	topServices, err := getTopServices(utils.BeginningOfMonth(now.Year(), now.Month()), utils.EndOfDay(now), 4)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get top services")
		return
	}

	utils.RespondWithData(c, http.StatusOK, DashboardOverview{
		TodaySales:        todaySales,
		MonthSales:        monthSales,
		TodayTransactions: todayCount,
		PendingCount:      statusCounts[models.StatusPending],
		StatusCounts:      statusCounts,
		TopServices:       topServices,
	})
}

// getTopServices ranks services by revenue over completed transactions in
// the window. The query only fetches the item rows; counting and the decimal
// revenue sum happen in Go.
func getTopServices(start, end time.Time, limit int) ([]ServiceSummary, error) {
	var items []models.TransactionItem
	err := config.DB.Table("transaction_items").
		Joins("JOIN transactions ON transactions.id = transaction_items.transaction_id").
		Where("transactions.status = ? AND transactions.transaction_date BETWEEN ? AND ?",
			models.StatusCompleted, start, end).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	type agg struct {
		count   int
		revenue decimal.Decimal
	}
	byName := map[string]*agg{}
	for _, item := range items {
		a, ok := byName[item.ServiceName]
		if !ok {
			a = &agg{revenue: decimal.Zero}
			byName[item.ServiceName] = a
		}
		a.count += item.Quantity
		a.revenue = a.revenue.Add(item.TotalPrice)
	}

	summaries := make([]ServiceSummary, 0, len(byName))
	for name, a := range byName {
		summaries = append(summaries, ServiceSummary{Name: name, Count: a.count, Revenue: a.revenue})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Revenue.GreaterThan(summaries[j].Revenue)
	})
	if len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}
