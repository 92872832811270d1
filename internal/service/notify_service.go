package service

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"

	"roomdesk/internal/db"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// NotifyService sends booking confirmation and cancellation emails through
// SendGrid. When the API key or sender address is not configured it logs and
// does nothing, so the booking flow works without email in every deployment.
type NotifyService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewNotifyService(apiKey, fromEmail, fromName string) *NotifyService {
	if fromName == "" {
		fromName = "Room Bookings"
	}
	return &NotifyService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// SendBookingEmail delivers the email in the background. Failures are logged
// and never surfaced to the request that triggered them.
func (s *NotifyService) SendBookingEmail(booking *db.Booking, roomName, status string) {
	if s.apiKey == "" || s.fromEmail == "" {
		logrus.WithField("booking_id", booking.ID).Debug("SendGrid not configured, skipping booking email")
		return
	}

	subject := fmt.Sprintf("Your room booking is %s - %s", status, booking.Title)
	body := fmt.Sprintf(
		"Hello,\n\nYour meeting room booking is %s.\n\n"+
			"Booking details:\n"+
			"Room: %s\n"+
			"Date: %s\n"+
			"Time: %s\n"+
			"Title: %s\n"+
			"Attendees: %d\n\n"+
			"Booking reference: %s\n",
		status, roomName, booking.Date, booking.Time, booking.Title, booking.Attendees, booking.ID,
	)

	go func(toEmail, subject, body, bookingID string) {
		from := mail.NewEmail(s.fromName, s.fromEmail)
		to := mail.NewEmail("", toEmail)
		message := mail.NewSingleEmail(from, subject, to, body, body)

		client := sendgrid.NewSendClient(s.apiKey)
		response, err := client.Send(message)
		if err != nil {
			logrus.WithError(err).WithField("booking_id", bookingID).Warn("Failed to send booking email")
			return
		}
		if response.StatusCode < 200 || response.StatusCode >= 300 {
			logrus.WithFields(logrus.Fields{
				"booking_id":  bookingID,
				"status_code": response.StatusCode,
			}).Warn("SendGrid returned a non-success status")
		}
	}(booking.Email, subject, body, booking.ID)
}
