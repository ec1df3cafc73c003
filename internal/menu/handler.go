package menu

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lulukitchen/lulu-engine/internal/cart"
	"github.com/lulukitchen/lulu-engine/internal/kv"
	"github.com/lulukitchen/lulu-engine/internal/session"
)

type Handler struct {
	service *Service
	kv      kv.Store
}

func NewHandler(service *Service, store kv.Store) *Handler {
	return &Handler{service: service, kv: store}
}

// --------------------------------------------------
// Full catalog
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.service.Items()})
}

// --------------------------------------------------
// Reload feed (replaces catalog wholesale)
// --------------------------------------------------
func (h *Handler) Reload(c *gin.Context) {
	count, err := h.service.Reload(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "menu reloaded",
		"items":   count,
	})
}

// --------------------------------------------------
// Recommendations (?limit=6)
// --------------------------------------------------

// cartIDsFor resolves the ids to exclude. A guest with a valid session
// token gets their own server-side cart; anonymous callers may name
// ids with ?in_cart=id1,id2.
func (h *Handler) cartIDsFor(c *gin.Context) []string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if sessionID, err := session.ValidateToken(parts[1]); err == nil {
				items, err := cart.NewStore(h.kv, sessionID).Items(c.Request.Context())
				if err == nil {
					ids := make([]string, 0, len(items))
					for _, item := range items {
						ids = append(ids, item.ID)
					}
					return ids
				}
			}
		}
	}

	var ids []string
	for _, id := range strings.Split(c.Query("in_cart"), ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func (h *Handler) Recommendations(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if err != nil {
		limit = 6
	}

	c.JSON(http.StatusOK, gin.H{"items": h.service.Recommend(h.cartIDsFor(c), limit)})
}
