package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshcuts/payment-gateway/framework/web"
)

// WebhookHandler handles events from stripe. The body must stay unparsed:
// signature verification runs over the raw bytes.
func (h *Stripe) WebhookHandler(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return web.RespondText(ctx, fmt.Sprintf("Webhook Error: %s", err), http.StatusBadRequest)
	}

	signature := ctx.Request.Header.Get("Stripe-Signature")

	if err := h.webhookService.HandleEvent(ctx, body, signature); err != nil {
		l.Errorf("webhook signature verification failed: %s", err)
		return web.RespondText(ctx, fmt.Sprintf("Webhook Error: %s", err), http.StatusBadRequest)
	}

	return web.Respond(ctx, gin.H{"received": true}, http.StatusOK)
}
