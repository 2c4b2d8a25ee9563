package domain

// User holds the subset of a user document this service reads and writes.
// The stripeCustomerId field is written once and reused on later requests.
type User struct {
	StripeCustomerID string `firestore:"stripeCustomerId"`
}
