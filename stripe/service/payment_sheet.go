package service

import (
	"context"

	"github.com/stripe/stripe-go/v74"
)

type PaymentSheetInput struct {
	Amount     int64  `json:"amount" binding:"required,gt=0"`
	CustomerID string `json:"customerId" binding:"required"`
	UserName   string `json:"userName"`
	UserEmail  string `json:"userEmail"`
	BarberID   string `json:"barberId"`
}

// PaymentSheetCredentials is everything a client-side payment sheet needs to
// collect a payment.
type PaymentSheetCredentials struct {
	PaymentIntent string `json:"paymentIntent"`
	EphemeralKey  string `json:"ephemeralKey"`
	Customer      string `json:"customer"`
}

type PaymentIntentInput struct {
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// PaymentSheet resolves the stripe customer for the user, then creates the
// ephemeral key and payment intent the payment sheet widget consumes.
// A customer created and persisted by an earlier step is not rolled back
// when a later step fails.
func (s *StripeService) PaymentSheet(ctx context.Context, input PaymentSheetInput) (*PaymentSheetCredentials, error) {
	customerID, err := s.getOrCreateCustomer(ctx, input)
	if err != nil {
		return nil, err
	}

	ephemeralKey, err := s.stripeAPI.CreateEphemeralKey(&stripe.EphemeralKeyParams{
		Customer:      stripe.String(customerID),
		StripeVersion: stripe.String(stripe.APIVersion),
	})
	if err != nil {
		return nil, err
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(input.Amount),
		Currency: stripe.String(string(settlementCurrency)),
		Customer: stripe.String(customerID),
	}
	params.AddMetadata(metadataUserID, input.CustomerID)
	params.AddMetadata(metadataUserName, input.UserName)
	params.AddMetadata(metadataUserEmail, input.UserEmail)
	params.AddMetadata(metadataBarberID, input.BarberID)

	paymentIntent, err := s.stripeAPI.CreatePaymentIntent(params)
	if err != nil {
		return nil, err
	}

	return &PaymentSheetCredentials{
		PaymentIntent: paymentIntent.ClientSecret,
		EphemeralKey:  ephemeralKey.Secret,
		Customer:      customerID,
	}, nil
}

// getOrCreateCustomer returns the stripe customer ID recorded for the user,
// creating the customer and persisting the mapping on first use. Two
// concurrent first-time requests can each create a customer; the last write
// wins, which is accepted.
func (s *StripeService) getOrCreateCustomer(ctx context.Context, input PaymentSheetInput) (string, error) {
	customerID, err := s.paymentsDAL.GetUserStripeCustomerID(ctx, input.CustomerID)
	if err != nil {
		return "", err
	}

	if customerID != "" {
		return customerID, nil
	}

	l := s.loggerProvider(ctx)

	params := &stripe.CustomerParams{
		Name:  stripe.String(input.UserName),
		Email: stripe.String(input.UserEmail),
	}
	params.AddMetadata(metadataUserID, input.CustomerID)

	customer, err := s.stripeAPI.CreateCustomer(params)
	if err != nil {
		return "", err
	}

	if err := s.paymentsDAL.SetUserStripeCustomerID(ctx, input.CustomerID, customer.ID); err != nil {
		return "", err
	}

	l.Infof("created stripe customer %s for user %s", customer.ID, input.CustomerID)

	return customer.ID, nil
}

// CreatePaymentIntent creates a bare payment intent without a customer or
// ephemeral key. Kept for older app versions that do not use the payment
// sheet flow.
func (s *StripeService) CreatePaymentIntent(ctx context.Context, input PaymentIntentInput) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(input.Amount),
		Currency: stripe.String(string(settlementCurrency)),
	}
	params.AddMetadata(metadataUserID, input.UserID)
	params.AddMetadata(metadataUserName, input.UserName)
	params.AddMetadata(metadataUserEmail, input.UserEmail)

	paymentIntent, err := s.stripeAPI.CreatePaymentIntent(params)
	if err != nil {
		return "", err
	}

	return paymentIntent.ClientSecret, nil
}
