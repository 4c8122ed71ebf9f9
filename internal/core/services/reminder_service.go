package services

import (
	"context"
	"log"
	"time"

	"paydesk/internal/adapters/persistence/repositories"
	"paydesk/internal/core/domain"

	"github.com/robfig/cron/v3"
)

// ReminderService logs a daily summary of payments still awaiting approval
type ReminderService struct {
	paymentRepo repositories.PaymentRepository
	cron        *cron.Cron
	schedule    string
}

// NewReminderService creates a new reminder service. schedule is a cron
// expression; the default fires every morning at 08:30.
func NewReminderService(paymentRepo repositories.PaymentRepository, schedule string) *ReminderService {
	if schedule == "" {
		schedule = "30 8 * * *"
	}
	return &ReminderService{
		paymentRepo: paymentRepo,
		cron:        cron.New(),
		schedule:    schedule,
	}
}

// Start registers and launches the reminder job
func (s *ReminderService) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.remindPending); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("✅ ReminderService started [schedule: %s]", s.schedule)
	return nil
}

// Stop halts the cron scheduler
func (s *ReminderService) Stop() {
	s.cron.Stop()
	log.Println("🛑 ReminderService stopped")
}

func (s *ReminderService) remindPending() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.paymentRepo.CountByStatus(ctx, string(domain.StatusPending))
	if err != nil {
		log.Printf("⚠️ Reminder: failed to count pending payments: %v", err)
		return
	}

	if count > 0 {
		log.Printf("🔔 Reminder: %d payment(s) awaiting approval", count)
	}
}
