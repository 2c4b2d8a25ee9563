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

func TestStripeService_CreateConnectedAccount(t *testing.T) {
	ctx := context.Background()

	input := ConnectedAccountInput{
		BarberID: "barber-1",
		Email:    "barber@example.com",
	}

	account := &stripe.Account{ID: "acct_123"}

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
			name: "success create connected account",
			want: "acct_123",
			on: func(f *fields) {
				f.stripeAPI.On("CreateAccount", mock.MatchedBy(func(params *stripe.AccountParams) bool {
					return *params.Type == string(stripe.AccountTypeExpress) &&
						*params.Country == "GB" &&
						*params.Email == "barber@example.com" &&
						*params.Capabilities.CardPayments.Requested &&
						*params.Capabilities.Transfers.Requested
				})).Return(account, nil)
				f.paymentsDAL.On("SetBarberStripeAccountID", ctx, "barber-1", "acct_123").Return(nil)
			},
		},
		{
			name:    "create account error",
			wantErr: true,
			on: func(f *fields) {
				f.stripeAPI.On("CreateAccount", mock.AnythingOfType("*stripe.AccountParams")).Return(nil, errors.New("error"))
			},
		},
		{
			name:    "account mapping not persisted",
			wantErr: true,
			on: func(f *fields) {
				f.stripeAPI.On("CreateAccount", mock.AnythingOfType("*stripe.AccountParams")).Return(account, nil)
				f.paymentsDAL.On("SetBarberStripeAccountID", ctx, "barber-1", "acct_123").Return(errors.New("error"))
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

			got, err := s.CreateConnectedAccount(ctx, input)
			if (err != nil) != tt.wantErr {
				t.Errorf("StripeService.CreateConnectedAccount() error = %v, wantErr %v", err, tt.wantErr)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripeService_CreateAccountLink(t *testing.T) {
	ctx := context.Background()

	input := AccountLinkInput{
		AccountID:  "acct_123",
		RefreshURL: "https://freshcuts.app/reauth",
		ReturnURL:  "https://freshcuts.app/return",
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
			name: "success create account link",
			want: "https://connect.stripe.com/setup/e/acct_123",
			on: func(f *fields) {
				f.stripeAPI.On("CreateAccountLink", mock.MatchedBy(func(params *stripe.AccountLinkParams) bool {
					return *params.Account == "acct_123" &&
						*params.RefreshURL == "https://freshcuts.app/reauth" &&
						*params.ReturnURL == "https://freshcuts.app/return" &&
						*params.Type == string(stripe.AccountLinkTypeAccountOnboarding)
				})).Return(&stripe.AccountLink{URL: "https://connect.stripe.com/setup/e/acct_123"}, nil)
			},
		},
		{
			name:    "create account link error",
			wantErr: true,
			on: func(f *fields) {
				f.stripeAPI.On("CreateAccountLink", mock.AnythingOfType("*stripe.AccountLinkParams")).Return(nil, errors.New("error"))
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

			got, err := s.CreateAccountLink(ctx, input)
			if (err != nil) != tt.wantErr {
				t.Errorf("StripeService.CreateAccountLink() error = %v, wantErr %v", err, tt.wantErr)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}
