package response

import "course_enrollment/internal/domain/entities"

type PaymentArtifactResponse struct {
	EnrollmentID  string `json:"enrollment_id"`
	TransactionID string `json:"transaction_id"`
	ArtifactURL   string `json:"artifact_url"`
	Message       string `json:"message"`
}

// EnrollAndInitiateResponse carries the new enrollment next to its artifact.
type EnrollAndInitiateResponse struct {
	EnrollmentID  string `json:"enrollment_id"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	ArtifactURL   string `json:"artifact_url"`
	Message       string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromPaymentArtifact(a entities.PaymentArtifact) PaymentArtifactResponse {
	return PaymentArtifactResponse{
		EnrollmentID:  a.EnrollmentID,
		TransactionID: a.TransactionID,
		ArtifactURL:   a.ArtifactURL,
		Message:       a.Message,
	}
}

func FromEnrollAndInitiate(e entities.Enrollment, a entities.PaymentArtifact) EnrollAndInitiateResponse {
	return EnrollAndInitiateResponse{
		EnrollmentID:  e.ID,
		Status:        string(e.Status),
		TransactionID: a.TransactionID,
		ArtifactURL:   a.ArtifactURL,
		Message:       a.Message,
	}
}
