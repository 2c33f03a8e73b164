// services/cleanup_service.go
package services

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CleanupService removes abandoned pending transactions on a schedule.
// Hard delete is only ever a cleanup path for checkouts that never reached
// payment; completed sales are untouched.
type CleanupService struct {
	txns     *TransactionService
	maxAge   time.Duration
	schedule *cron.Cron
}

func NewCleanupService(db *gorm.DB) *CleanupService {
	maxAgeHours := 24
	if env := os.Getenv("PENDING_MAX_AGE_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil && h > 0 {
			maxAgeHours = h
		}
	}
	return &CleanupService{
		txns:   NewTransactionService(db),
		maxAge: time.Duration(maxAgeHours) * time.Hour,
	}
}

// StartScheduler runs the cleanup nightly at 3 AM.
func (s *CleanupService) StartScheduler() {
	c := cron.New()
	c.AddFunc("0 3 * * *", s.Run)
	c.Start()
	s.schedule = c
	log.Println("Pending-transaction cleanup scheduler started")
}

// Run deletes pending transactions older than the configured age.
func (s *CleanupService) Run() {
	deleted, err := s.txns.DeleteStalePending(s.maxAge)
	if err != nil {
		log.Printf("Pending cleanup failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("Pending cleanup removed %d abandoned transactions", deleted)
	}
}
