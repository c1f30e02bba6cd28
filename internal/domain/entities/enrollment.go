package entities

import (
	"errors"
	"strings"
	"time"
)

// EnrollmentStatus represents the lifecycle of a course enrollment request.
//
// Domain notes:
//   - A record is created PENDING by the user's enroll request.
//   - Payment confirmation, payment webhooks and admin actions move it to
//     APPROVED or REJECTED. No transition is terminal.
//   - NOT_ENROLLED is a lookup sentinel and is never stored.

type EnrollmentStatus string

const (
	EnrollmentStatusNotEnrolled EnrollmentStatus = "NOT_ENROLLED"
	EnrollmentStatusPending     EnrollmentStatus = "PENDING"
	EnrollmentStatusApproved    EnrollmentStatus = "APPROVED"
	EnrollmentStatusRejected    EnrollmentStatus = "REJECTED"
)

var ErrInvalidEnrollmentStatus = errors.New("invalid enrollment status")

// ParseEnrollmentStatus accepts a storable status in any letter case.
func ParseEnrollmentStatus(raw string) (EnrollmentStatus, error) {
	s := EnrollmentStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Storable() {
		return "", ErrInvalidEnrollmentStatus
	}
	return s, nil
}

// Storable reports whether the status may be persisted on a record.
func (s EnrollmentStatus) Storable() bool {
	switch s {
	case EnrollmentStatusPending, EnrollmentStatusApproved, EnrollmentStatusRejected:
		return true
	}
	return false
}

// Enrollment is a user's request to access a course.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//   - a guard item PAIR#<user_id>#<course_id> keeps (user, course) unique
//
// LastTransactionID keeps the transaction reported by the latest payment
// webhook. It is stored for audit and never compared.
type Enrollment struct {
	ID                string           `json:"id"`
	UserID            string           `json:"user_id"`
	CourseID          string           `json:"course_id"`
	Status            EnrollmentStatus `json:"status"`
	RequestedAt       time.Time        `json:"requested_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	LastTransactionID string           `json:"last_transaction_id,omitempty"`
}

func (e Enrollment) IsApproved() bool {
	return e.Status == EnrollmentStatusApproved
}
