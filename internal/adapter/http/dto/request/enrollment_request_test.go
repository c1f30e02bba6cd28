package request

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

func TestEnrollRequest_ResolveIDs(t *testing.T) {
	if got := (EnrollRequest{CourseID: " 10 "}).ResolveCourseID(); got != "10" {
		t.Fatalf("expected 10, got %q", got)
	}
	if got := (EnrollRequest{CourseID: "   "}).ResolveCourseID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := (SimulatePaymentRequest{EnrollmentID: " e-1 "}).ResolveEnrollmentID(); got != "e-1" {
		t.Fatalf("expected e-1, got %q", got)
	}
}

func TestWebhookPaymentRequest_StatusValidation(t *testing.T) {
	if err := RegisterValidations(); err != nil {
		t.Fatalf("register: %v", err)
	}

	cases := []struct {
		status string
		valid  bool
	}{
		{"APPROVED", true},
		{"rejected", true},
		{" pending ", true},
		{"NOT_ENROLLED", false},
		{"PAID", false},
		{"", false},
	}
	for _, tc := range cases {
		err := binding.Validator.ValidateStruct(WebhookPaymentRequest{EnrollmentID: "e-1", Status: tc.status})
		if tc.valid && err != nil {
			t.Fatalf("status %q: unexpected error %v", tc.status, err)
		}
		if !tc.valid && err == nil {
			t.Fatalf("status %q: expected validation error", tc.status)
		}
	}
}
