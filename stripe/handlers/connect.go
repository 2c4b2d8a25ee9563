package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshcuts/payment-gateway/framework/web"
	"github.com/freshcuts/payment-gateway/logger"
	"github.com/freshcuts/payment-gateway/stripe/service"
)

// CreateConnectedAccountHandler creates an express account for a barber so
// they can receive payouts.
func (h *Stripe) CreateConnectedAccountHandler(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	var input service.ConnectedAccountInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	l.SetLabels(map[string]string{
		logger.LabelBarberID: input.BarberID,
	})

	accountID, err := h.service.CreateConnectedAccount(ctx, input)
	if err != nil {
		l.Errorf("connected account creation failed with error: %s", err)
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{"accountId": accountID}, http.StatusOK)
}

// CreateAccountLinkHandler generates a hosted onboarding link for an
// existing connected account.
func (h *Stripe) CreateAccountLinkHandler(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	var input service.AccountLinkInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	url, err := h.service.CreateAccountLink(ctx, input)
	if err != nil {
		l.Errorf("account link creation failed with error: %s", err)
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{"url": url}, http.StatusOK)
}
