package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshcuts/payment-gateway/framework/web"
)

// Health reports service liveness for the App Engine health checker.
func Health(ctx *gin.Context) error {
	return web.Respond(ctx, gin.H{"status": "ok"}, http.StatusOK)
}
