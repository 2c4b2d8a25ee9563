package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v74"

	"github.com/freshcuts/payment-gateway/logger"
	dalMocks "github.com/freshcuts/payment-gateway/stripe/dal/mocks"
	"github.com/freshcuts/payment-gateway/stripe/service/mocks"
)

func TestStripeService_PaymentSheet(t *testing.T) {
	ctx := context.Background()

	input := PaymentSheetInput{
		Amount:     1500,
		CustomerID: "user-1",
		UserName:   "Sam",
		UserEmail:  "sam@example.com",
		BarberID:   "barber-1",
	}

	ephemeralKey := &stripe.EphemeralKey{Secret: "ek_test_123"}
	paymentIntent := &stripe.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret_abc"}
	customer := &stripe.Customer{ID: "cus_new"}

	type fields struct {
		stripeAPI   *mocks.PaymentsAPI
		paymentsDAL *dalMocks.IPaymentsFirestore
	}

	tests := []struct {
		name    string
		fields  fields
		want    *PaymentSheetCredentials
		wantErr bool
		on      func(f *fields)
	}{
		{
			name: "success with existing customer",
			want: &PaymentSheetCredentials{
				PaymentIntent: "pi_1_secret_abc",
				EphemeralKey:  "ek_test_123",
				Customer:      "cus_existing",
			},
			on: func(f *fields) {
				f.paymentsDAL.On("GetUserStripeCustomerID", ctx, "user-1").Return("cus_existing", nil)
				f.stripeAPI.On("CreateEphemeralKey", mock.MatchedBy(func(params *stripe.EphemeralKeyParams) bool {
					return *params.Customer == "cus_existing"
				})).Return(ephemeralKey, nil)
				f.stripeAPI.On("CreatePaymentIntent", mock.MatchedBy(func(params *stripe.PaymentIntentParams) bool {
					return *params.Amount == 1500 &&
						*params.Currency == string(stripe.CurrencyGBP) &&
						*params.Customer == "cus_existing" &&
						params.Metadata["userId"] == "user-1" &&
						params.Metadata["barberId"] == "barber-1"
				})).Return(paymentIntent, nil)
			},
		},
		{
			name: "success creating new customer",
			want: &PaymentSheetCredentials{
				PaymentIntent: "pi_1_secret_abc",
				EphemeralKey:  "ek_test_123",
				Customer:      "cus_new",
			},
			on: func(f *fields) {
				f.paymentsDAL.On("GetUserStripeCustomerID", ctx, "user-1").Return("", nil)
				f.stripeAPI.On("CreateCustomer", mock.MatchedBy(func(params *stripe.CustomerParams) bool {
					return *params.Name == "Sam" && *params.Email == "sam@example.com"
				})).Return(customer, nil)
				f.paymentsDAL.On("SetUserStripeCustomerID", ctx, "user-1", "cus_new").Return(nil)
				f.stripeAPI.On("CreateEphemeralKey", mock.AnythingOfType("*stripe.EphemeralKeyParams")).Return(ephemeralKey, nil)
				f.stripeAPI.On("CreatePaymentIntent", mock.AnythingOfType("*stripe.PaymentIntentParams")).Return(paymentIntent, nil)
			},
		},
		{
			name:    "customer lookup error",
			wantErr: true,
			on: func(f *fields) {
				f.paymentsDAL.On("GetUserStripeCustomerID", ctx, "user-1").Return("", errors.New("error"))
			},
		},
		{
			name:    "customer mapping not persisted",
			wantErr: true,
			on: func(f *fields) {
				f.paymentsDAL.On("GetUserStripeCustomerID", ctx, "user-1").Return("", nil)
				f.stripeAPI.On("CreateCustomer", mock.AnythingOfType("*stripe.CustomerParams")).Return(customer, nil)
				f.paymentsDAL.On("SetUserStripeCustomerID", ctx, "user-1", "cus_new").Return(errors.New("error"))
			},
		},
		{
			name:    "ephemeral key error",
			wantErr: true,
			on: func(f *fields) {
				f.paymentsDAL.On("GetUserStripeCustomerID", ctx, "user-1").Return("cus_existing", nil)
				f.stripeAPI.On("CreateEphemeralKey", mock.AnythingOfType("*stripe.EphemeralKeyParams")).Return(nil, errors.New("error"))
			},
		},
		{
			name:    "payment intent error",
			wantErr: true,
			on: func(f *fields) {
				f.paymentsDAL.On("GetUserStripeCustomerID", ctx, "user-1").Return("cus_existing", nil)
				f.stripeAPI.On("CreateEphemeralKey", mock.AnythingOfType("*stripe.EphemeralKeyParams")).Return(ephemeralKey, nil)
				f.stripeAPI.On("CreatePaymentIntent", mock.AnythingOfType("*stripe.PaymentIntentParams")).Return(nil, errors.New("error"))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = fields{
				stripeAPI:   mocks.NewPaymentsAPI(t),
				paymentsDAL: dalMocks.NewIPaymentsFirestore(t),
			}

			s := NewStripeServiceWithDAL(logger.FromContext, tt.fields.stripeAPI, tt.fields.paymentsDAL)

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			got, err := s.PaymentSheet(ctx, input)
			if (err != nil) != tt.wantErr {
				t.Errorf("StripeService.PaymentSheet() error = %v, wantErr %v", err, tt.wantErr)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripeService_CreatePaymentIntent(t *testing.T) {
	ctx := context.Background()

	input := PaymentIntentInput{
		Amount:    2000,
		UserID:    "user-1",
		UserName:  "Sam",
		UserEmail: "sam@example.com",
	}

	type fields struct {
		stripeAPI   *mocks.PaymentsAPI
		paymentsDAL *dalMocks.IPaymentsFirestore
	}

	tests := []struct {
		name    string
		fields  fields
		want    string
		wantErr bool
		on      func(f *fields)
	}{
		{
			name: "success create payment intent",
			want: "pi_2_secret_def",
			on: func(f *fields) {
				f.stripeAPI.On("CreatePaymentIntent", mock.MatchedBy(func(params *stripe.PaymentIntentParams) bool {
					return *params.Amount == 2000 &&
						*params.Currency == string(stripe.CurrencyGBP) &&
						params.Customer == nil &&
						params.Metadata["userId"] == "user-1"
				})).Return(&stripe.PaymentIntent{ClientSecret: "pi_2_secret_def"}, nil)
			},
		},
		{
			name:    "payment intent error",
			wantErr: true,
			on: func(f *fields) {
				f.stripeAPI.On("CreatePaymentIntent", mock.AnythingOfType("*stripe.PaymentIntentParams")).Return(nil, errors.New("error"))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = fields{
				stripeAPI:   mocks.NewPaymentsAPI(t),
				paymentsDAL: dalMocks.NewIPaymentsFirestore(t),
			}

			s := NewStripeServiceWithDAL(logger.FromContext, tt.fields.stripeAPI, tt.fields.paymentsDAL)

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			got, err := s.CreatePaymentIntent(ctx, input)
			if (err != nil) != tt.wantErr {
				t.Errorf("StripeService.CreatePaymentIntent() error = %v, wantErr %v", err, tt.wantErr)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}
