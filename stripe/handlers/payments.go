package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshcuts/payment-gateway/framework/web"
	"github.com/freshcuts/payment-gateway/logger"
	"github.com/freshcuts/payment-gateway/stripe/service"
)

// PaymentSheetHandler prepares everything the mobile payment sheet needs:
// a customer, an ephemeral key scoped to it, and a payment intent.
func (h *Stripe) PaymentSheetHandler(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	var input service.PaymentSheetInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	l.SetLabels(map[string]string{
		logger.LabelUserID:   input.CustomerID,
		logger.LabelBarberID: input.BarberID,
	})

	credentials, err := h.service.PaymentSheet(ctx, input)
	if err != nil {
		l.Errorf("payment sheet creation failed with error: %s", err)
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, credentials, http.StatusOK)
}

// CreatePaymentIntentHandler creates a bare payment intent without a customer.
func (h *Stripe) CreatePaymentIntentHandler(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	var input service.PaymentIntentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	clientSecret, err := h.service.CreatePaymentIntent(ctx, input)
	if err != nil {
		l.Errorf("payment intent creation failed with error: %s", err)
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{"clientSecret": clientSecret}, http.StatusOK)
}
