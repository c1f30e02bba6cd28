package response

import (
	"course_enrollment/internal/domain/entities"
	"fmt"
	"time"
)

const EnrollCreatedMessage = "Enrolled successfully. Please proceed to payment."

type EnrollResponse struct {
	EnrollmentID string `json:"enrollment_id"`
	Status       string `json:"status"`
	Message      string `json:"message"`
}

type EnrollmentResponse struct {
	ID                string    `json:"id"`
	EnrollmentID      string    `json:"enrollment_id"`
	UserID            string    `json:"user_id"`
	CourseID          string    `json:"course_id"`
	Status            string    `json:"status"`
	RequestedAt       time.Time `json:"requested_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	LastTransactionID string    `json:"last_transaction_id,omitempty"`
}

type EnrollmentStatusResponse struct {
	CourseID string `json:"course_id"`
	Status   string `json:"status"`
}

type BatchEnrollmentResponse struct {
	Submitted int               `json:"submitted"`
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed"`
	Message   string            `json:"message"`
}

func FromEnrollCreated(e entities.Enrollment) EnrollResponse {
	return EnrollResponse{
		EnrollmentID: e.ID,
		Status:       string(e.Status),
		Message:      EnrollCreatedMessage,
	}
}

func FromEnrollment(e entities.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:                e.ID,
		EnrollmentID:      e.ID,
		UserID:            e.UserID,
		CourseID:          e.CourseID,
		Status:            string(e.Status),
		RequestedAt:       e.RequestedAt,
		UpdatedAt:         e.UpdatedAt,
		LastTransactionID: e.LastTransactionID,
	}
}

func FromEnrollments(list []entities.Enrollment) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEnrollment(e))
	}
	return out
}

// FromBatchResult always returns non-nil collections so clients see [] and {}.
func FromBatchResult(action string, r entities.BatchResult) BatchEnrollmentResponse {
	succeeded := r.Succeeded
	if succeeded == nil {
		succeeded = []string{}
	}
	failed := r.Failed
	if failed == nil {
		failed = map[string]string{}
	}
	return BatchEnrollmentResponse{
		Submitted: r.Submitted,
		Succeeded: succeeded,
		Failed:    failed,
		Message:   fmt.Sprintf("Batch %s completed for %d enrollments", action, r.Submitted),
	}
}
