package entities

// PaymentArtifact is what a user scans to pay for a pending enrollment.
//
// TransactionID correlates the artifact with the enrollment for display and
// audit only. Generating an artifact never changes the enrollment.
type PaymentArtifact struct {
	EnrollmentID  string `json:"enrollment_id"`
	TransactionID string `json:"transaction_id"`
	ArtifactURL   string `json:"artifact_url"`
	Message       string `json:"message"`
}

// BatchResult reports a best-effort admin batch transition.
//
// Failed maps each failing enrollment id to the error message it produced.
type BatchResult struct {
	Submitted int               `json:"submitted"`
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed"`
}
