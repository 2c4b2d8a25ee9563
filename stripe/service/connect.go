package service

import (
	"context"

	"github.com/stripe/stripe-go/v74"
)

type ConnectedAccountInput struct {
	BarberID string `json:"barberId" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type AccountLinkInput struct {
	AccountID  string `json:"accountId" binding:"required"`
	RefreshURL string `json:"refreshUrl" binding:"required"`
	ReturnURL  string `json:"returnUrl" binding:"required"`
}

// CreateConnectedAccount creates an express connected account for the barber
// and records the account ID on their document.
func (s *StripeService) CreateConnectedAccount(ctx context.Context, input ConnectedAccountInput) (string, error) {
	l := s.loggerProvider(ctx)

	params := &stripe.AccountParams{
		Type:    stripe.String(string(stripe.AccountTypeExpress)),
		Country: stripe.String(accountCountry),
		Email:   stripe.String(input.Email),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{
				Requested: stripe.Bool(true),
			},
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
	}

	account, err := s.stripeAPI.CreateAccount(params)
	if err != nil {
		return "", err
	}

	if err := s.paymentsDAL.SetBarberStripeAccountID(ctx, input.BarberID, account.ID); err != nil {
		return "", err
	}

	l.Infof("created connected account %s for barber %s", account.ID, input.BarberID)

	return account.ID, nil
}

// CreateAccountLink requests a hosted onboarding link for an existing
// connected account and returns its URL.
func (s *StripeService) CreateAccountLink(ctx context.Context, input AccountLinkInput) (string, error) {
	link, err := s.stripeAPI.CreateAccountLink(&stripe.AccountLinkParams{
		Account:    stripe.String(input.AccountID),
		RefreshURL: stripe.String(input.RefreshURL),
		ReturnURL:  stripe.String(input.ReturnURL),
		Type:       stripe.String(string(stripe.AccountLinkTypeAccountOnboarding)),
	})
	if err != nil {
		return "", err
	}

	return link.URL, nil
}
