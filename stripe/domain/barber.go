package domain

// Barber holds the subset of a barber document this service writes: the
// connected account created for them during onboarding.
type Barber struct {
	StripeAccountID string `firestore:"stripeAccountId"`
}
