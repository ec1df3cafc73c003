package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lulukitchen/lulu-engine/internal/kv"
)

type Handler struct {
	kv   kv.Store
	opts []Option
}

func NewHandler(store kv.Store, opts ...Option) *Handler {
	return &Handler{kv: store, opts: opts}
}

func (h *Handler) storeFor(c *gin.Context) *Store {
	return NewStore(h.kv, c.GetString("sessionID"), h.opts...)
}

// --------------------------------------------------
// Read cart
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	store := h.storeFor(c)

	items, err := store.Items(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Total
	}

	c.JSON(http.StatusOK, gin.H{
		"items":    items,
		"subtotal": subtotal,
	})
}

// --------------------------------------------------
// Add line
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	var item Item
	if err := c.BindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// Mirrors the store's own guard so the caller gets a 400 instead
	// of a silently unchanged cart.
	if item.ID == "" || item.Qty <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item needs an id and a positive qty"})
		return
	}

	if err := h.storeFor(c).Add(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "item added"})
}

// --------------------------------------------------
// Remove all lines with an id
// --------------------------------------------------
func (h *Handler) RemoveItem(c *gin.Context) {
	if err := h.storeFor(c).Remove(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item removed"})
}

// --------------------------------------------------
// Clear cart
// --------------------------------------------------
func (h *Handler) Clear(c *gin.Context) {
	if err := h.storeFor(c).Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
