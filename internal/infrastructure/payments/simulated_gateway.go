package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"
)

const DefaultArtifactBaseURL = "https://placehold.co/400x400/E9E9E9/000000"

var ErrMissingEnrollmentID = errors.New("missing enrollment id")

// SimulatedGateway issues QR placeholder artifacts without calling any
// payment provider. Confirmation happens through the simulate endpoint or
// the payment webhook.
type SimulatedGateway struct {
	artifactBaseURL string
	now             func() time.Time
}

func NewSimulatedGateway(artifactBaseURL string) *SimulatedGateway {
	base := strings.TrimRight(strings.TrimSpace(artifactBaseURL), "/")
	if base == "" {
		base = DefaultArtifactBaseURL
	}
	log.Printf("[payment][gateway] simulated gateway initialized artifact_base_url=%s", base)
	return &SimulatedGateway{artifactBaseURL: base, now: time.Now}
}

// CreateCharge returns a transaction id of the form TXN-<enrollmentID>-<unixMillis>
// and an artifact URL that embeds it.
func (g *SimulatedGateway) CreateCharge(ctx context.Context, enrollmentID string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	enrollmentID = strings.TrimSpace(enrollmentID)
	if enrollmentID == "" {
		return "", "", ErrMissingEnrollmentID
	}

	txID := fmt.Sprintf("TXN-%s-%d", enrollmentID, g.now().UTC().UnixMilli())
	q := url.Values{}
	q.Set("text", "Scan to Pay\nID: "+txID)
	artifactURL := g.artifactBaseURL + "?" + q.Encode()

	log.Printf("[payment][gateway] simulated charge created enrollment_id=%s transaction_id=%s", enrollmentID, txID)
	return txID, artifactURL, nil
}
