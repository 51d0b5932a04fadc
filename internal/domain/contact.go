package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StatusReceived is the status of every new submission.
const StatusReceived = "received"

// ContactSubmission is one contact-form message. Submissions are never deleted.
type ContactSubmission struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	Subject     string    `json:"subject" bson:"subject"`
	Message     string    `json:"message" bson:"message"`
	Company     *string   `json:"company" bson:"company"`
	Phone       *string   `json:"phone" bson:"phone"`
	SubmittedAt time.Time `json:"submitted_at" bson:"submitted_at"`
	Status      string    `json:"status" bson:"status"`
}

// ContactSubmissionCreate represents a contact form submission.
// Required fields are checked for presence only; values are stored as sent.
type ContactSubmissionCreate struct {
	Name    *string `json:"name" binding:"required" validate:"required"`
	Email   *string `json:"email" binding:"required" validate:"required"`
	Subject *string `json:"subject" binding:"required" validate:"required"`
	Message *string `json:"message" binding:"required" validate:"required"`
	Company *string `json:"company"`
	Phone   *string `json:"phone"`
}

func NewContactSubmission(in ContactSubmissionCreate, now time.Time) *ContactSubmission {
	return &ContactSubmission{
		ID:          uuid.NewString(),
		Name:        deref(in.Name),
		Email:       deref(in.Email),
		Subject:     deref(in.Subject),
		Message:     deref(in.Message),
		Company:     in.Company,
		Phone:       in.Phone,
		SubmittedAt: StoreTime(now),
		Status:      StatusReceived,
	}
}

type ContactRepository interface {
	Create(ctx context.Context, submission *ContactSubmission) error
	Fetch(ctx context.Context, limit, skip int) ([]ContactSubmission, error)
	GetByID(ctx context.Context, id string) (*ContactSubmission, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// ContactNotifier delivers the operator notification for a submission.
type ContactNotifier interface {
	NotifyContactSubmission(ctx context.Context, submission *ContactSubmission) error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	Submit(ctx context.Context, in *ContactSubmissionCreate) (*ContactSubmission, error)
	ListSubmissions(ctx context.Context, limit, skip int) ([]ContactSubmission, error)
	GetSubmission(ctx context.Context, id string) (*ContactSubmission, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
