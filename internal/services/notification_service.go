// internal/services/notification_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// NotificationResult reports one notification attempt. It is returned to the
// caller and never stored.
type NotificationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// EmailContent is set only when a draft was composed but not delivered.
	EmailContent string `json:"emailContent,omitempty"`
}

type NotificationService struct {
	composer *EmailComposer
	mailer   Mailer
	archive  *StorageService
}

// NewNotificationService wires the parent notification pipeline. archive may
// be nil.
func NewNotificationService(composer *EmailComposer, mailer Mailer, archive *StorageService) *NotificationService {
	return &NotificationService{
		composer: composer,
		mailer:   mailer,
		archive:  archive,
	}
}

// NotifyParent composes and sends the leave notice. Every failure is folded
// into the result.
func (s *NotificationService) NotifyParent(ctx context.Context, applicationID string, details LeaveDetails) *NotificationResult {
	log := logrus.WithFields(logrus.Fields{
		"application_id": applicationID,
		"student_name":   details.StudentName,
	})

	if !s.mailer.Configured() {
		log.WithError(ErrMailerNotConfigured).Warn("Parent notification not sent")
		return &NotificationResult{
			Success: false,
			Message: "Email service not configured. Notification could not be sent.",
		}
	}
	if details.ParentEmail == "" {
		log.Warn("Parent notification skipped, no parent email on file")
		return &NotificationResult{
			Success: false,
			Message: "No parent email on file. Notification was not sent.",
		}
	}

	email, err := s.composer.Compose(ctx, details)
	if err != nil {
		log.WithError(err).Warn("Failed to generate notification email")
		return &NotificationResult{
			Success: false,
			Message: fmt.Sprintf("Failed to generate email content: %v", err),
		}
	}

	err = s.mailer.Send(ctx, EmailMessage{
		To:      details.ParentEmail,
		Subject: email.Subject,
		HTML:    email.HTML,
		Text:    email.Text,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to send notification email")
		s.archiveUndelivered(ctx, log, applicationID, email.HTML)
		return &NotificationResult{
			Success:      false,
			Message:      fmt.Sprintf("Failed to send email: %v", err),
			EmailContent: email.HTML,
		}
	}

	log.Info("Parent notification sent")
	return &NotificationResult{
		Success: true,
		Message: "Notification email sent to " + details.ParentEmail,
	}
}

func (s *NotificationService) archiveUndelivered(ctx context.Context, log *logrus.Entry, applicationID, html string) {
	if !s.archive.Enabled() {
		return
	}
	key, err := s.archive.ArchiveEmail(ctx, applicationID, html)
	if err != nil {
		log.WithError(err).Warn("Failed to archive undelivered notification")
		return
	}
	log.WithField("key", key).Info("Archived undelivered notification")
}
