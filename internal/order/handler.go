package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lulukitchen/lulu-engine/internal/config"
)

type Handler struct {
	service  *Service
	payments config.PaymentProviders
}

func NewHandler(service *Service, payments config.PaymentProviders) *Handler {
	return &Handler{service: service, payments: payments}
}

func bindCheckout(c *gin.Context) (CheckoutRequest, bool) {
	var req CheckoutRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return req, false
	}
	return req, true
}

// --------------------------------------------------
// Quote
// --------------------------------------------------
func (h *Handler) Quote(c *gin.Context) {
	req, ok := bindCheckout(c)
	if !ok {
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), c.GetString("sessionID"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, quote)
}

// --------------------------------------------------
// WhatsApp hand-off
// --------------------------------------------------
func (h *Handler) Whatsapp(c *gin.Context) {
	req, ok := bindCheckout(c)
	if !ok {
		return
	}

	o, message, link, err := h.service.CheckoutWhatsApp(c.Request.Context(), c.GetString("sessionID"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":        o,
		"message":      message,
		"whatsapp_url": link,
	})
}

// --------------------------------------------------
// Email hand-off
// --------------------------------------------------
func (h *Handler) Email(c *gin.Context) {
	req, ok := bindCheckout(c)
	if !ok {
		return
	}

	o, result, err := h.service.CheckoutEmail(c.Request.Context(), c.GetString("sessionID"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !result.OK {
		c.JSON(http.StatusBadGateway, gin.H{"error": result.Error, "order": o})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": o, "email": result})
}

// --------------------------------------------------
// Offered payment providers
// --------------------------------------------------
func (h *Handler) Providers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"providers": h.payments})
}
