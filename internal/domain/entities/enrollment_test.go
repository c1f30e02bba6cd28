package entities

import (
	"errors"
	"testing"
)

func TestParseEnrollmentStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want EnrollmentStatus
		err  error
	}{
		{raw: "APPROVED", want: EnrollmentStatusApproved},
		{raw: " rejected ", want: EnrollmentStatusRejected},
		{raw: "Pending", want: EnrollmentStatusPending},
		{raw: "NOT_ENROLLED", err: ErrInvalidEnrollmentStatus},
		{raw: "paid", err: ErrInvalidEnrollmentStatus},
		{raw: "", err: ErrInvalidEnrollmentStatus},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseEnrollmentStatus(tc.raw)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestEnrollment_IsApproved(t *testing.T) {
	if (Enrollment{Status: EnrollmentStatusPending}).IsApproved() {
		t.Fatalf("pending must not be approved")
	}
	if !(Enrollment{Status: EnrollmentStatusApproved}).IsApproved() {
		t.Fatalf("expected approved")
	}
}

func TestUser_IsAdmin(t *testing.T) {
	if !(User{Role: UserRoleAdmin}).IsAdmin() {
		t.Fatalf("expected admin")
	}
	if (User{Role: "USER"}).IsAdmin() {
		t.Fatalf("expected non-admin")
	}
}
