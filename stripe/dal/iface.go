package dal

import (
	"context"

	"github.com/freshcuts/payment-gateway/stripe/domain"
)

//go:generate mockery --name IPaymentsFirestore --output ./mocks
type IPaymentsFirestore interface {
	SavePayment(ctx context.Context, payment *domain.Payment) error
	GetUserStripeCustomerID(ctx context.Context, userID string) (string, error)
	SetUserStripeCustomerID(ctx context.Context, userID, customerID string) error
	SetBarberStripeAccountID(ctx context.Context, barberID, accountID string) error
}
