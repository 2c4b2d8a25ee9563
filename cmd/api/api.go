package api

import (
	"net/http"
	"os"

	"github.com/freshcuts/payment-gateway/cmd/api/handlers"
	"github.com/freshcuts/payment-gateway/framework/connection"
	"github.com/freshcuts/payment-gateway/framework/mid"
	"github.com/freshcuts/payment-gateway/framework/web"
	"github.com/freshcuts/payment-gateway/logger"
	stripeHandlers "github.com/freshcuts/payment-gateway/stripe/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	stripe := stripeHandlers.NewStripe(loggerProvider, a.conn)

	app.Get("/health", handlers.Health)

	app.Post("/webhook", stripe.WebhookHandler)
	app.Post("/payment-sheet", stripe.PaymentSheetHandler)
	app.Post("/create-payment-intent", stripe.CreatePaymentIntentHandler)
	app.Post("/create-connected-account", stripe.CreateConnectedAccountHandler)
	app.Post("/create-account-link", stripe.CreateAccountLinkHandler)

	return app
}
