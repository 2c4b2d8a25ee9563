package service

import (
	"github.com/stripe/stripe-go/v74"

	"github.com/freshcuts/payment-gateway/framework/connection"
	"github.com/freshcuts/payment-gateway/logger"
	"github.com/freshcuts/payment-gateway/stripe/dal"
)

const (
	// settlementCurrency is the fixed currency every payment intent is
	// created in.
	settlementCurrency = stripe.CurrencyGBP

	// accountCountry is the fixed country connected accounts are created in.
	accountCountry = "GB"
)

// Metadata keys attached to payment intents and read back from webhook
// events. The client apps rely on these exact names.
const (
	metadataUserID    = "userId"
	metadataUserName  = "userName"
	metadataUserEmail = "userEmail"
	metadataBarberID  = "barberId"
)

type StripeService struct {
	loggerProvider logger.Provider
	*connection.Connection
	stripeAPI   PaymentsAPI
	paymentsDAL dal.IPaymentsFirestore
}

func NewStripeService(loggerProvider logger.Provider, conn *connection.Connection, stripeAPI PaymentsAPI) *StripeService {
	return &StripeService{
		loggerProvider,
		conn,
		stripeAPI,
		dal.NewPaymentsFirestoreWithClient(conn.Firestore),
	}
}

// NewStripeServiceWithDAL returns a service using the given DAL instead of
// one derived from a connection.
func NewStripeServiceWithDAL(loggerProvider logger.Provider, stripeAPI PaymentsAPI, paymentsDAL dal.IPaymentsFirestore) *StripeService {
	return &StripeService{
		loggerProvider: loggerProvider,
		stripeAPI:      stripeAPI,
		paymentsDAL:    paymentsDAL,
	}
}
