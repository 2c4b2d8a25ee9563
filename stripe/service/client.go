package service

import (
	"context"
	"encoding/json"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/freshcuts/payment-gateway/common"
	"github.com/freshcuts/payment-gateway/secretmanager"
)

// PaymentsAPI is the surface of the Stripe SDK this service uses.
//
//go:generate mockery --name PaymentsAPI --output ./mocks
type PaymentsAPI interface {
	CreateCustomer(params *stripe.CustomerParams) (*stripe.Customer, error)
	CreateEphemeralKey(params *stripe.EphemeralKeyParams) (*stripe.EphemeralKey, error)
	CreatePaymentIntent(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	CreateAccount(params *stripe.AccountParams) (*stripe.Account, error)
	CreateAccountLink(params *stripe.AccountLinkParams) (*stripe.AccountLink, error)
	ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error)
}

type Client struct {
	*client.API
	webhookSignKey string
}

type stripeSecret struct {
	APIKey         string `json:"api_key"`
	WebhookSignKey string `json:"webhook_sign_key"`
}

func NewStripeClient(ctx context.Context) (*Client, error) {
	stripeSecret, err := getStripeSecret(ctx)
	if err != nil {
		return nil, err
	}

	// Init stripe client
	var stripeClient client.API

	stripeClient.Init(stripeSecret.APIKey, nil)

	return &Client{
		&stripeClient,
		stripeSecret.WebhookSignKey,
	}, nil
}

// getStripeSecret resolves the API key and webhook signing key from the
// environment, falling back to Secret Manager when they are not set.
func getStripeSecret(ctx context.Context) (stripeSecret, error) {
	apiKey := common.GetEnv("STRIPE_SECRET_KEY", "")
	signKey := common.GetEnv("STRIPE_WEBHOOK_SIGNING_KEY", "")

	if apiKey != "" && signKey != "" {
		return stripeSecret{
			APIKey:         apiKey,
			WebhookSignKey: signKey,
		}, nil
	}

	data, err := secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretStripe)
	if err != nil {
		return stripeSecret{}, err
	}

	var secret stripeSecret

	if err := json.Unmarshal(data, &secret); err != nil {
		return stripeSecret{}, err
	}

	return secret, nil
}

func (c *Client) CreateCustomer(params *stripe.CustomerParams) (*stripe.Customer, error) {
	return c.Customers.New(params)
}

func (c *Client) CreateEphemeralKey(params *stripe.EphemeralKeyParams) (*stripe.EphemeralKey, error) {
	return c.EphemeralKeys.New(params)
}

func (c *Client) CreatePaymentIntent(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return c.PaymentIntents.New(params)
}

func (c *Client) CreateAccount(params *stripe.AccountParams) (*stripe.Account, error) {
	return c.Accounts.New(params)
}

func (c *Client) CreateAccountLink(params *stripe.AccountLinkParams) (*stripe.AccountLink, error) {
	return c.AccountLinks.New(params)
}

// ConstructWebhookEvent verifies the signature header against the signing
// key and parses the event envelope from the raw body bytes.
func (c *Client) ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error) {
	return webhook.ConstructEventWithOptions(payload, signature, c.webhookSignKey, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
}
