package request

import "strings"

// EnrollRequest is shared by the enroll, payment initiate and
// enroll-and-initiate routes. The user comes from the bearer token.
type EnrollRequest struct {
	CourseID string `json:"course_id" binding:"required"`
}

func (r EnrollRequest) ResolveCourseID() string {
	return strings.TrimSpace(r.CourseID)
}

type SimulatePaymentRequest struct {
	EnrollmentID string `json:"enrollment_id" binding:"required"`
}

func (r SimulatePaymentRequest) ResolveEnrollmentID() string {
	return strings.TrimSpace(r.EnrollmentID)
}

// WebhookPaymentRequest is sent by the payment provider once a transaction
// settles. Status must be one of PENDING, APPROVED or REJECTED (any case).
type WebhookPaymentRequest struct {
	EnrollmentID  string `json:"enrollment_id" binding:"required"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status" binding:"required,enrollment_status"`
}

type BatchEnrollmentRequest struct {
	IDs []string `json:"ids" binding:"required"`
}
