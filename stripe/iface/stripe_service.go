//go:generate mockery --output=./mocks --all
package iface

import (
	"context"

	"github.com/freshcuts/payment-gateway/stripe/service"
)

type StripeService interface {
	PaymentSheet(ctx context.Context, input service.PaymentSheetInput) (*service.PaymentSheetCredentials, error)
	CreatePaymentIntent(ctx context.Context, input service.PaymentIntentInput) (string, error)
	CreateConnectedAccount(ctx context.Context, input service.ConnectedAccountInput) (string, error)
	CreateAccountLink(ctx context.Context, input service.AccountLinkInput) (string, error)
}
