package handlers

import (
	"context"

	"github.com/freshcuts/payment-gateway/framework/connection"
	"github.com/freshcuts/payment-gateway/logger"
	"github.com/freshcuts/payment-gateway/stripe/iface"
	"github.com/freshcuts/payment-gateway/stripe/service"
)

type Stripe struct {
	loggerProvider logger.Provider
	service        iface.StripeService
	webhookService *service.StripeWebhookService
}

// NewStripe creates new stripe package handlers
func NewStripe(loggerProvider logger.Provider, conn *connection.Connection) *Stripe {
	stripeClient, err := service.NewStripeClient(context.Background())
	if err != nil {
		panic(err)
	}

	return &Stripe{
		loggerProvider,
		service.NewStripeService(loggerProvider, conn, stripeClient),
		service.NewStripeWebhookService(loggerProvider, conn, stripeClient),
	}
}
