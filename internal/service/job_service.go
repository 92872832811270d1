package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"roomdesk/internal/repository"
)

// JobService runs the scheduled maintenance work.
type JobService struct {
	Bookings      repository.BookingStore
	RetentionDays int
}

func NewJobService(bookings repository.BookingStore, retentionDays int) *JobService {
	return &JobService{Bookings: bookings, RetentionDays: retentionDays}
}

// PurgeExpiredBookings deletes bookings dated before today minus the
// retention window. A zero or negative window disables the sweep.
func (s *JobService) PurgeExpiredBookings(ctx context.Context) error {
	if s.RetentionDays <= 0 {
		return nil
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -s.RetentionDays).Format("2006-01-02")
	deleted, err := s.Bookings.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("purge expired bookings: %w", err)
	}
	if deleted > 0 {
		logrus.WithFields(logrus.Fields{
			"deleted": deleted,
			"cutoff":  cutoff,
		}).Info("Purged expired bookings")
	}
	return nil
}
