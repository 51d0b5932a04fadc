package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	contactRepo domain.ContactRepository
	dispatcher  *NotificationDispatcher
	validate    *validator.Validate
	maxLimit    int
	now         func() time.Time
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(contactRepo domain.ContactRepository, dispatcher *NotificationDispatcher, validate *validator.Validate, maxLimit int) domain.ContactUsecase {
	return &contactUsecase{
		contactRepo: contactRepo,
		dispatcher:  dispatcher,
		validate:    validate,
		maxLimit:    maxLimit,
		now:         time.Now,
	}
}

// Submit stores the submission, then hands the operator notification to the dispatcher.
// The notification outcome never affects the returned record.
func (uc *contactUsecase) Submit(ctx context.Context, in *domain.ContactSubmissionCreate) (*domain.ContactSubmission, error) {
	if err := validateStruct(uc.validate, in); err != nil {
		return nil, err
	}

	var sub *domain.ContactSubmission
	var err error
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		sub = domain.NewContactSubmission(*in, uc.now())
		if err = uc.contactRepo.Create(ctx, sub); !errors.Is(err, domain.ErrDuplicateID) {
			break
		}
	}
	if errors.Is(err, domain.ErrNotPersisted) {
		return nil, apperror.Persistence("Failed to submit contact form", err)
	}
	if err != nil {
		return nil, apperror.Unexpected(fmt.Sprintf("Error submitting contact form: %v", err), err)
	}

	uc.dispatcher.Dispatch(*sub)

	return sub, nil
}

func (uc *contactUsecase) ListSubmissions(ctx context.Context, limit, skip int) ([]domain.ContactSubmission, error) {
	limit, skip, err := normalizePage(limit, skip, defaultContactLimit, uc.maxLimit)
	if err != nil {
		return nil, err
	}

	subs, err := uc.contactRepo.Fetch(ctx, limit, skip)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Sprintf("Error fetching contact submissions: %v", err), err)
	}
	return subs, nil
}

func (uc *contactUsecase) GetSubmission(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	sub, err := uc.contactRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Contact submission not found")
	}
	if err != nil {
		return nil, apperror.Unexpected(fmt.Sprintf("Error fetching contact submission: %v", err), err)
	}
	return sub, nil
}

func (uc *contactUsecase) UpdateStatus(ctx context.Context, id, status string) error {
	// stored exactly as sent
	if strings.TrimSpace(status) == "" {
		return apperror.Validation("status is required", "Status: field required")
	}

	err := uc.contactRepo.UpdateStatus(ctx, id, status)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Contact submission not found")
	}
	if err != nil {
		return apperror.Unexpected(fmt.Sprintf("Error updating submission status: %v", err), err)
	}
	return nil
}
