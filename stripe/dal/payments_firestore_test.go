package dal

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freshcuts/payment-gateway/common"
	"github.com/freshcuts/payment-gateway/stripe/domain"
)

func TestNewPaymentsFirestoreDAL(t *testing.T) {
	ctx := context.Background()
	_, err := NewPaymentsFirestore(ctx, common.TestProjectID)
	assert.NoError(t, err)

	d := NewPaymentsFirestoreWithClient(nil)
	assert.NotNil(t, d)
}

func TestPaymentsFirestore_WriteSemantics(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("set FIRESTORE_EMULATOR_HOST to run Firestore write tests")
	}

	ctx := context.Background()

	d, err := NewPaymentsFirestore(ctx, common.TestProjectID)
	assert.NoError(t, err)

	fs := d.firestoreClientFun(ctx)

	t.Run("user merge set preserves other fields", func(t *testing.T) {
		ref := fs.Collection(usersCollection).Doc("user-merge")
		_, err := ref.Set(ctx, map[string]interface{}{"name": "Sam"})
		assert.NoError(t, err)

		assert.NoError(t, d.SetUserStripeCustomerID(ctx, "user-merge", "cus_123"))

		snap, err := ref.Get(ctx)
		assert.NoError(t, err)

		data := snap.Data()
		assert.Equal(t, "cus_123", data[fieldStripeCustomerID])
		assert.Equal(t, "Sam", data["name"])
	})

	t.Run("barber merge set preserves other fields", func(t *testing.T) {
		ref := fs.Collection(barbersCollection).Doc("barber-merge")
		_, err := ref.Set(ctx, map[string]interface{}{"shop": "Fresh Cuts"})
		assert.NoError(t, err)

		assert.NoError(t, d.SetBarberStripeAccountID(ctx, "barber-merge", "acct_123"))

		snap, err := ref.Get(ctx)
		assert.NoError(t, err)

		data := snap.Data()
		assert.Equal(t, "acct_123", data[fieldStripeAccountID])
		assert.Equal(t, "Fresh Cuts", data["shop"])
	})

	t.Run("payment save is a full overwrite", func(t *testing.T) {
		first := &domain.Payment{ID: "pi_overwrite", Amount: 10, Status: "processing"}
		second := &domain.Payment{ID: "pi_overwrite", Amount: 15, Status: "succeeded"}

		assert.NoError(t, d.SavePayment(ctx, first))
		assert.NoError(t, d.SavePayment(ctx, second))

		snap, err := d.GetPaymentRef(ctx, "pi_overwrite").Get(ctx)
		assert.NoError(t, err)

		var got domain.Payment

		assert.NoError(t, snap.DataTo(&got))
		assert.Equal(t, 15.0, got.Amount)
		assert.Equal(t, "succeeded", got.Status)
	})

	t.Run("unknown user yields empty customer id", func(t *testing.T) {
		customerID, err := d.GetUserStripeCustomerID(ctx, "no-such-user")
		assert.NoError(t, err)
		assert.Empty(t, customerID)
	})
}
