// internal/services/leave_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/models"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/store"
)

var (
	ErrAlreadyReviewed  = errors.New("leave application has already been reviewed")
	ErrRemarksRequired  = errors.New("remarks are required when rejecting a leave application")
	ErrInvalidDecision  = errors.New("review decision must be Approved or Rejected")
	ErrInvalidStatus    = errors.New("unknown leave status")
	ErrStudentIDMissing = errors.New("student id is required")
)

const submittedMessage = "Leave application submitted successfully."

// SubmissionResult is what the dashboard shows after a submission. Success
// reflects the durable write only; notification outcome lives in
// NotificationSent and Notification.
type SubmissionResult struct {
	Success          bool                `json:"success"`
	Message          string              `json:"message"`
	ApplicationID    string              `json:"applicationId,omitempty"`
	Errors           ValidationErrors    `json:"errors,omitempty"`
	NotificationSent bool                `json:"notificationSent"`
	Notification     *NotificationResult `json:"notification,omitempty"`
}

type LeaveService struct {
	store    store.Store
	notifier *NotificationService
	async    bool
	now      func() time.Time

	pending sync.WaitGroup
}

type LeaveServiceOption func(*LeaveService)

// WithAsyncNotification returns the submission result before the parent
// notification has run.
func WithAsyncNotification(async bool) LeaveServiceOption {
	return func(s *LeaveService) { s.async = async }
}

func NewLeaveService(st store.Store, notifier *NotificationService, opts ...LeaveServiceOption) *LeaveService {
	s := &LeaveService{
		store:    st,
		notifier: notifier,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitLeaveApplication validates, stores and then notifies. The returned
// error is non-nil exactly when nothing was stored; the result is always set.
func (s *LeaveService) SubmitLeaveApplication(ctx context.Context, studentID string, raw models.LeaveForm) (*SubmissionResult, error) {
	form, err := ValidateLeaveForm(raw)
	if err != nil {
		var verrs ValidationErrors
		if errors.As(err, &verrs) {
			logrus.WithField("student_id", studentID).Debug("Leave application failed validation")
			return &SubmissionResult{
				Success: false,
				Message: "Please correct the highlighted fields.",
				Errors:  verrs,
			}, err
		}
		return &SubmissionResult{Success: false, Message: err.Error()}, err
	}

	id, err := s.addValidated(ctx, studentID, form)
	if err != nil {
		logrus.WithError(err).WithField("student_id", studentID).Error("Failed to store leave application")
		return &SubmissionResult{
			Success: false,
			Message: "Failed to submit leave application: " + err.Error(),
		}, err
	}

	result := &SubmissionResult{
		Success:       true,
		Message:       submittedMessage,
		ApplicationID: id,
	}

	// The stored snapshot is not reused; the profile is read again for the notice.
	profile, err := s.store.GetStudentProfile(ctx, studentID)
	if err != nil {
		logrus.WithError(err).WithField("student_id", studentID).
			Warn("Could not load student profile for notification, skipping")
		result.Message = submittedMessage + " Parent notification was skipped because the student profile could not be loaded."
		return result, nil
	}

	details := LeaveDetails{
		ParentEmail: profile.ParentEmail,
		StudentName: profile.Name,
		LeaveType:   form.LeaveType,
		StartDate:   form.StartDate,
		EndDate:     form.EndDate,
		Reason:      form.Reason,
	}

	if s.async {
		s.pending.Add(1)
		go func() {
			defer s.pending.Done()
			s.notifier.NotifyParent(context.WithoutCancel(ctx), id, details)
		}()
		result.Message = submittedMessage + " A notification email to your parent is being sent."
		return result, nil
	}

	notification := s.notifier.NotifyParent(ctx, id, details)
	result.Notification = notification
	result.NotificationSent = notification.Success
	if notification.Success {
		result.Message = submittedMessage + " Your parent has been notified by email."
	} else {
		result.Message = submittedMessage + " However, the parent notification could not be sent: " + notification.Message
	}
	return result, nil
}

// WaitForNotifications blocks until background notifications have finished.
func (s *LeaveService) WaitForNotifications() {
	s.pending.Wait()
}

// AddLeaveApplication stores a form for studentID without notifying anyone.
func (s *LeaveService) AddLeaveApplication(ctx context.Context, studentID string, raw models.LeaveForm) (string, error) {
	form, err := ValidateLeaveForm(raw)
	if err != nil {
		return "", err
	}
	return s.addValidated(ctx, studentID, form)
}

func (s *LeaveService) addValidated(ctx context.Context, studentID string, form models.LeaveForm) (string, error) {
	if studentID == "" {
		return "", ErrStudentIDMissing
	}

	profile, err := s.store.GetStudentProfile(ctx, studentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", fmt.Errorf("student profile %s: %w", studentID, err)
		}
		return "", err
	}

	app := &models.LeaveApplication{
		StudentID:   studentID,
		StudentName: profile.Name,
		ParentEmail: profile.ParentEmail,
		LeaveType:   form.LeaveType,
		StartDate:   form.StartDate,
		EndDate:     form.EndDate,
		Reason:      form.Reason,
		Status:      models.LeaveStatusPending,
	}
	return s.store.CreateLeaveApplication(ctx, app)
}

func (s *LeaveService) GetLeaveApplicationsByStudentID(ctx context.Context, studentID string) ([]models.LeaveApplication, error) {
	if studentID == "" {
		return nil, ErrStudentIDMissing
	}
	return s.store.ListLeaveApplicationsByStudent(ctx, studentID)
}

func (s *LeaveService) ListForReview(ctx context.Context, filter models.LeaveFilter) ([]models.LeaveApplication, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, filter.Status)
	}
	return s.store.ListLeaveApplications(ctx, filter)
}

// ReviewLeaveApplication records an administrative decision on a pending
// application. Only the review fields change.
func (s *LeaveService) ReviewLeaveApplication(ctx context.Context, id, reviewerID string, decision models.LeaveStatus, remarks string) (*models.LeaveApplication, error) {
	if decision != models.LeaveStatusApproved && decision != models.LeaveStatusRejected {
		return nil, ErrInvalidDecision
	}
	remarks = strings.TrimSpace(remarks)
	if decision == models.LeaveStatusRejected && remarks == "" {
		return nil, ErrRemarksRequired
	}

	app, err := s.store.GetLeaveApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status != models.LeaveStatusPending {
		return nil, ErrAlreadyReviewed
	}

	review := models.LeaveReview{
		Status:     decision,
		ReviewedBy: reviewerID,
		ReviewedAt: s.now().UTC(),
		Remarks:    remarks,
	}
	if err := s.store.ReviewLeaveApplication(ctx, id, review); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"application_id": id,
		"reviewer_id":    reviewerID,
		"decision":       decision,
	}).Info("Leave application reviewed")

	return s.store.GetLeaveApplication(ctx, id)
}
