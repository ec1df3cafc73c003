package lang

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get returns the guest's language plus the direction attribute the
// client mirrors onto the document element.
func (h *Handler) Get(c *gin.Context) {
	lang := h.service.Get(c.Request.Context(), c.GetString("sessionID"))
	c.JSON(http.StatusOK, gin.H{"lang": lang, "dir": Dir(lang)})
}

func (h *Handler) Set(c *gin.Context) {
	var req struct {
		Lang string `json:"lang"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.Set(c.Request.Context(), c.GetString("sessionID"), req.Lang); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"lang": req.Lang, "dir": Dir(req.Lang)})
}
