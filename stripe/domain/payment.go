package domain

import (
	"time"
)

// Payment is the document persisted for every successful payment intent,
// keyed by the Stripe payment intent ID. Amount is stored in decimal
// currency units, not the minor units Stripe reports.
type Payment struct {
	ID          string    `firestore:"id"`
	CustomerID  string    `firestore:"customerId"`
	UserID      string    `firestore:"userId"`
	Email       string    `firestore:"email"`
	Amount      float64   `firestore:"amount"`
	Currency    string    `firestore:"currency"`
	PaymentTime time.Time `firestore:"paymentTime"`
	Status      string    `firestore:"status"`
	BarberID    string    `firestore:"barberId"`
}
