package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/models"
)

const (
	studentsCollection = "students"
	leavesCollection   = "leaveApplications"
	accountsCollection = "accounts"
)

// FirestoreStore talks to Firestore with server-side (Admin SDK) credentials.
// Listing a student's applications newest first needs the composite index
// leaveApplications(studentId ASC, appliedAt DESC).
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) GetStudentProfile(ctx context.Context, studentID string) (*models.StudentProfile, error) {
	doc, err := s.client.Collection(studentsCollection).Doc(studentID).Get(ctx)
	if err != nil {
		return nil, translateFirestoreError("get student profile", err)
	}

	var profile models.StudentProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("decode student profile %s: %w", studentID, err)
	}
	profile.ID = doc.Ref.ID
	return &profile, nil
}

func (s *FirestoreStore) SaveStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	profile.UpdatedAt = time.Now().UTC()
	_, err := s.client.Collection(studentsCollection).Doc(profile.ID).Set(ctx, profile)
	if err != nil {
		return translateFirestoreError("save student profile", err)
	}
	return nil
}

func (s *FirestoreStore) CreateLeaveApplication(ctx context.Context, app *models.LeaveApplication) (string, error) {
	ref := s.client.Collection(leavesCollection).NewDoc()
	// zero AppliedAt is replaced by the server timestamp
	app.AppliedAt = time.Time{}
	if _, err := ref.Create(ctx, app); err != nil {
		return "", translateFirestoreError("create leave application", err)
	}
	app.ID = ref.ID
	return ref.ID, nil
}

func (s *FirestoreStore) GetLeaveApplication(ctx context.Context, id string) (*models.LeaveApplication, error) {
	doc, err := s.client.Collection(leavesCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, translateFirestoreError("get leave application", err)
	}
	return decodeLeave(doc)
}

func (s *FirestoreStore) ListLeaveApplicationsByStudent(ctx context.Context, studentID string) ([]models.LeaveApplication, error) {
	query := s.client.Collection(leavesCollection).
		Where("studentId", "==", studentID).
		OrderBy("appliedAt", firestore.Desc)
	return s.collect(ctx, "leaveApplications by studentId ordered by appliedAt desc", query)
}

func (s *FirestoreStore) ListLeaveApplications(ctx context.Context, filter models.LeaveFilter) ([]models.LeaveApplication, error) {
	query := s.client.Collection(leavesCollection).Query
	name := "leaveApplications ordered by appliedAt desc"
	if filter.Status != "" {
		query = query.Where("status", "==", string(filter.Status))
		name = "leaveApplications by status ordered by appliedAt desc"
	}
	query = query.OrderBy("appliedAt", firestore.Desc).Limit(listLimit(filter))
	return s.collect(ctx, name, query)
}

func (s *FirestoreStore) ReviewLeaveApplication(ctx context.Context, id string, review models.LeaveReview) error {
	_, err := s.client.Collection(leavesCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(review.Status)},
		{Path: "reviewedBy", Value: review.ReviewedBy},
		{Path: "reviewedAt", Value: review.ReviewedAt},
		{Path: "adminRemarks", Value: review.Remarks},
	})
	if err != nil {
		return translateFirestoreError("review leave application", err)
	}
	return nil
}

func (s *FirestoreStore) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	doc, err := s.client.Collection(accountsCollection).Doc(models.NormalizeEmail(email)).Get(ctx)
	if err != nil {
		return nil, translateFirestoreError("get account", err)
	}

	var account models.Account
	if err := doc.DataTo(&account); err != nil {
		return nil, fmt.Errorf("decode account: %w", err)
	}
	return &account, nil
}

func (s *FirestoreStore) CreateAccount(ctx context.Context, account *models.Account) error {
	account.Email = models.NormalizeEmail(account.Email)
	account.CreatedAt = time.Now().UTC()
	if account.ID == "" {
		account.ID = s.client.Collection(accountsCollection).NewDoc().ID
	}
	// the email is the document id so lookups stay single-document reads
	if _, err := s.client.Collection(accountsCollection).Doc(account.Email).Create(ctx, account); err != nil {
		return translateFirestoreError("create account", err)
	}
	return nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

func (s *FirestoreStore) collect(ctx context.Context, name string, query firestore.Query) ([]models.LeaveApplication, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	apps := make([]models.LeaveApplication, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translateFirestoreQueryError(name, err)
		}
		app, err := decodeLeave(doc)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

func decodeLeave(doc *firestore.DocumentSnapshot) (*models.LeaveApplication, error) {
	var app models.LeaveApplication
	if err := doc.DataTo(&app); err != nil {
		return nil, fmt.Errorf("decode leave application %s: %w", doc.Ref.ID, err)
	}
	app.ID = doc.Ref.ID
	return &app, nil
}

func translateFirestoreError(op string, err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case codes.PermissionDenied, codes.Unauthenticated:
		return fmt.Errorf("%s: %w: %s", op, ErrPermissionDenied, status.Convert(err).Message())
	}
	return fmt.Errorf("%s: %w", op, err)
}

func translateFirestoreQueryError(query string, err error) error {
	if status.Code(err) == codes.FailedPrecondition {
		return &IndexMissingError{Query: query, Detail: status.Convert(err).Message()}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("list %s: %w", query, err)
	}
	return translateFirestoreError("list "+query, err)
}
