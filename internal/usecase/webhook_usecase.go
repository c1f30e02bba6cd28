package usecase

import (
	"context"
	"course_enrollment/internal/domain/entities"
	"log"
	"strings"
)

// IWebhookUseCase applies payment provider notifications.
//
// The provider's status is authoritative: it is written as-is, whatever the
// current status, so an APPROVED enrollment can be moved back to REJECTED.
// transactionID is kept for audit and is not checked against Initiate().

//go:generate mockgen -source=webhook_usecase.go -destination=../adapter/http/handlers/mocks/mock_webhook_usecase.go -package=mocks

type IWebhookUseCase interface {
	Reconcile(ctx context.Context, enrollmentID, transactionID, status string) (entities.Enrollment, error)
}

type WebhookUseCase struct {
	enrollments IEnrollmentUseCase
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(enrollments IEnrollmentUseCase) *WebhookUseCase {
	return &WebhookUseCase{enrollments: enrollments}
}

func (u *WebhookUseCase) Reconcile(ctx context.Context, enrollmentID, transactionID, status string) (entities.Enrollment, error) {
	log.Printf("[webhook][usecase] reconcile start enrollment_id=%s transaction_id=%s status=%q", enrollmentID, transactionID, status)
	target, err := entities.ParseEnrollmentStatus(status)
	if err != nil {
		log.Printf("[webhook][usecase] invalid status enrollment_id=%s status=%q", enrollmentID, status)
		return entities.Enrollment{}, ErrInvalidEnrollmentStatus
	}

	updated, err := u.enrollments.UpdateStatus(ctx, enrollmentID, target, strings.TrimSpace(transactionID))
	if err != nil {
		log.Printf("[webhook][usecase] reconcile failed enrollment_id=%s err=%v", enrollmentID, err)
		return entities.Enrollment{}, err
	}
	log.Printf("[webhook][usecase] reconcile success enrollment_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}
