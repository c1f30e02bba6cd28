package interfaces

import "context"

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway.go -package=mock_interfaces

// IPaymentProvider abstracts the provider that issues payment artifacts.
//
// The enrollment-service only ships a simulated provider. A real provider
// plugs in here and uses ctx for request timeouts and cancellation.
type IPaymentProvider interface {
	CreateCharge(ctx context.Context, enrollmentID string) (transactionID string, artifactURL string, err error)
}
