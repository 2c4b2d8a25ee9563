package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/freshcuts/payment-gateway/framework/connection"
	"github.com/freshcuts/payment-gateway/stripe/domain"
)

const (
	paymentsCollection = "payments"
	usersCollection    = "users"
	barbersCollection  = "barbers"

	fieldStripeCustomerID = "stripeCustomerId"
	fieldStripeAccountID  = "stripeAccountId"
)

// PaymentsFirestore is used to interact with payment data stored on Firestore.
type PaymentsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewPaymentsFirestore returns a new PaymentsFirestore instance with given project id.
func NewPaymentsFirestore(ctx context.Context, projectID string) (*PaymentsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewPaymentsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		}), nil
}

// NewPaymentsFirestoreWithClient returns a new PaymentsFirestore using given client.
func NewPaymentsFirestoreWithClient(fun connection.FirestoreFromContextFun) *PaymentsFirestore {
	return &PaymentsFirestore{
		firestoreClientFun: fun,
	}
}

// GetPaymentRef returns the firestore document reference for the given payment intent ID.
func (d *PaymentsFirestore) GetPaymentRef(ctx context.Context, paymentIntentID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(paymentsCollection).Doc(paymentIntentID)
}

// SavePayment writes the payment document keyed by its payment intent ID.
// A full overwrite, so redelivered webhook events are idempotent.
func (d *PaymentsFirestore) SavePayment(ctx context.Context, payment *domain.Payment) error {
	_, err := d.GetPaymentRef(ctx, payment.ID).Set(ctx, payment)
	return err
}

// GetUserStripeCustomerID returns the stripe customer ID recorded for the
// given user, or the empty string when none was recorded yet.
func (d *PaymentsFirestore) GetUserStripeCustomerID(ctx context.Context, userID string) (string, error) {
	docSnap, err := d.firestoreClientFun(ctx).Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", nil
		}

		return "", err
	}

	var user domain.User

	if err := docSnap.DataTo(&user); err != nil {
		return "", err
	}

	return user.StripeCustomerID, nil
}

// SetUserStripeCustomerID records the stripe customer ID on the user
// document, preserving any other fields.
func (d *PaymentsFirestore) SetUserStripeCustomerID(ctx context.Context, userID, customerID string) error {
	_, err := d.firestoreClientFun(ctx).Collection(usersCollection).Doc(userID).
		Set(ctx, map[string]interface{}{
			fieldStripeCustomerID: customerID,
		}, firestore.MergeAll)

	return err
}

// SetBarberStripeAccountID records the connected account ID on the barber
// document, preserving any other fields.
func (d *PaymentsFirestore) SetBarberStripeAccountID(ctx context.Context, barberID, accountID string) error {
	_, err := d.firestoreClientFun(ctx).Collection(barbersCollection).Doc(barberID).
		Set(ctx, map[string]interface{}{
			fieldStripeAccountID: accountID,
		}, firestore.MergeAll)

	return err
}
