package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stripe/stripe-go/v74"

	"github.com/freshcuts/payment-gateway/framework/connection"
	"github.com/freshcuts/payment-gateway/logger"
	"github.com/freshcuts/payment-gateway/stripe/dal"
	"github.com/freshcuts/payment-gateway/stripe/domain"
)

type StripeWebhookService struct {
	loggerProvider logger.Provider
	stripeAPI      PaymentsAPI
	paymentsDAL    dal.IPaymentsFirestore
}

func NewStripeWebhookService(loggerProvider logger.Provider, conn *connection.Connection, stripeAPI PaymentsAPI) *StripeWebhookService {
	return &StripeWebhookService{
		loggerProvider,
		stripeAPI,
		dal.NewPaymentsFirestoreWithClient(conn.Firestore),
	}
}

// NewStripeWebhookServiceWithDAL returns a webhook service using the given
// DAL instead of one derived from a connection.
func NewStripeWebhookServiceWithDAL(loggerProvider logger.Provider, stripeAPI PaymentsAPI, paymentsDAL dal.IPaymentsFirestore) *StripeWebhookService {
	return &StripeWebhookService{
		loggerProvider,
		stripeAPI,
		paymentsDAL,
	}
}

// HandleEvent verifies the signature on the raw body and dispatches the
// event. It returns an error only when verification or envelope parsing
// fails; anything after that point is acknowledged to stop redelivery.
func (s *StripeWebhookService) HandleEvent(ctx context.Context, body []byte, signature string) error {
	l := s.loggerProvider(ctx)

	event, err := s.stripeAPI.ConstructWebhookEvent(body, signature)
	if err != nil {
		return err
	}

	l.SetLabels(map[string]string{
		logger.LabelEventType: event.Type,
	})

	switch event.Type {
	case "payment_intent.succeeded":
		var paymentIntent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &paymentIntent); err != nil {
			l.Errorf("failed to decode payment intent from event %s: %v", event.ID, err)
			return nil
		}

		s.handlePaymentIntentSucceeded(ctx, &paymentIntent)
	default:
		l.Warningf("Unhandled Stripe webhook event type: %s", event.Type)
	}

	return nil
}

// handlePaymentIntentSucceeded records the payment keyed by the intent ID. A
// storage failure is logged and swallowed: the provider retries undelivered
// events, and there is no re-drive logic on this side to reconcile a
// rejected redelivery.
func (s *StripeWebhookService) handlePaymentIntentSucceeded(ctx context.Context, pi *stripe.PaymentIntent) {
	l := s.loggerProvider(ctx)

	var customerID string
	if pi.Customer != nil {
		customerID = pi.Customer.ID
	}

	payment := &domain.Payment{
		ID:          pi.ID,
		CustomerID:  customerID,
		UserID:      pi.Metadata[metadataUserID],
		Email:       pi.Metadata[metadataUserEmail],
		Amount:      float64(pi.Amount) / 100,
		Currency:    string(pi.Currency),
		PaymentTime: time.Unix(pi.Created, 0).UTC(),
		Status:      string(pi.Status),
		BarberID:    pi.Metadata[metadataBarberID],
	}

	l.SetLabels(map[string]string{
		logger.LabelPaymentIntentID: pi.ID,
		logger.LabelUserID:          payment.UserID,
		logger.LabelBarberID:        payment.BarberID,
	})

	if err := s.paymentsDAL.SavePayment(ctx, payment); err != nil {
		l.Errorf("failed to record payment %s: %v", pi.ID, err)
		return
	}

	l.Infof("recorded payment %s", pi.ID)
}
