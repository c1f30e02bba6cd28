package usecase

import (
	"context"
	"course_enrollment/internal/domain/entities"
	"course_enrollment/internal/usecase/interfaces"
	"errors"
	"fmt"
	"log"
	"strings"
)

var (
	ErrAlreadyPaid                  = errors.New("enrollment already paid")
	ErrPaymentProviderNotConfigured = errors.New("payment provider not configured")
	ErrPaymentProviderInvalidReply  = errors.New("payment provider returned an empty artifact")
)

const paymentPendingMessage = "Please scan the QR code to pay. The transaction is awaiting confirmation."

// IPaymentUseCase issues payment artifacts and applies payment confirmation.
//
// Requested behavior:
//   - Initiate() never changes the enrollment and may be called repeatedly.
//   - Confirm() is idempotent: an APPROVED enrollment is reported as already paid.

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/mock_payment_usecase.go -package=mocks

type IPaymentUseCase interface {
	Initiate(ctx context.Context, userID, courseID string) (entities.PaymentArtifact, error)
	Confirm(ctx context.Context, enrollmentID string) (string, error)
	EnrollAndInitiate(ctx context.Context, userID, courseID string) (entities.Enrollment, entities.PaymentArtifact, error)
}

type PaymentUseCase struct {
	enrollments IEnrollmentUseCase
	provider    interfaces.IPaymentProvider
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(enrollments IEnrollmentUseCase, provider interfaces.IPaymentProvider) *PaymentUseCase {
	return &PaymentUseCase{enrollments: enrollments, provider: provider}
}

func (u *PaymentUseCase) Initiate(ctx context.Context, userID, courseID string) (entities.PaymentArtifact, error) {
	log.Printf("[payment][usecase] initiate start user_id=%s course_id=%s", userID, courseID)
	e, err := u.enrollments.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		log.Printf("[payment][usecase] initiate lookup failed user_id=%s course_id=%s err=%v", userID, courseID, err)
		return entities.PaymentArtifact{}, err
	}
	if e.IsApproved() {
		log.Printf("[payment][usecase] already paid enrollment_id=%s", e.ID)
		return entities.PaymentArtifact{}, ErrAlreadyPaid
	}
	if u.provider == nil {
		log.Printf("[payment][usecase] provider not configured enrollment_id=%s", e.ID)
		return entities.PaymentArtifact{}, ErrPaymentProviderNotConfigured
	}

	txID, artifactURL, err := u.provider.CreateCharge(ctx, e.ID)
	if err != nil {
		log.Printf("[payment][usecase] provider failed enrollment_id=%s err=%v", e.ID, err)
		return entities.PaymentArtifact{}, err
	}
	if strings.TrimSpace(txID) == "" || strings.TrimSpace(artifactURL) == "" {
		log.Printf("[payment][usecase] provider returned empty artifact enrollment_id=%s", e.ID)
		return entities.PaymentArtifact{}, ErrPaymentProviderInvalidReply
	}
	log.Printf("[payment][usecase] initiate success enrollment_id=%s transaction_id=%s", e.ID, txID)

	return entities.PaymentArtifact{
		EnrollmentID:  e.ID,
		TransactionID: txID,
		ArtifactURL:   artifactURL,
		Message:       paymentPendingMessage,
	}, nil
}

func (u *PaymentUseCase) Confirm(ctx context.Context, enrollmentID string) (string, error) {
	log.Printf("[payment][usecase] confirm start enrollment_id=%s", enrollmentID)
	e, err := u.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		log.Printf("[payment][usecase] confirm lookup failed enrollment_id=%s err=%v", enrollmentID, err)
		return "", err
	}
	if e.IsApproved() {
		log.Printf("[payment][usecase] confirm no-op, already approved enrollment_id=%s", e.ID)
		return fmt.Sprintf("Payment already completed for enrollment ID: %s", e.ID), nil
	}

	if _, err := u.enrollments.Approve(ctx, e.ID); err != nil {
		log.Printf("[payment][usecase] confirm approve failed enrollment_id=%s err=%v", e.ID, err)
		return "", err
	}
	log.Printf("[payment][usecase] confirm success enrollment_id=%s", e.ID)
	return fmt.Sprintf("Payment simulation successful! Enrollment ID: %s is now APPROVED", e.ID), nil
}

func (u *PaymentUseCase) EnrollAndInitiate(ctx context.Context, userID, courseID string) (entities.Enrollment, entities.PaymentArtifact, error) {
	e, err := u.enrollments.Enroll(ctx, userID, courseID)
	if err != nil {
		return entities.Enrollment{}, entities.PaymentArtifact{}, err
	}
	artifact, err := u.Initiate(ctx, e.UserID, e.CourseID)
	if err != nil {
		// The enrollment stays PENDING; the caller can initiate again later.
		return e, entities.PaymentArtifact{}, err
	}
	return e, artifact, nil
}
