package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Create issues a fresh guest session. One browser, one cart: the
// client keeps the token and sends it on every cart/checkout call.
func (h *Handler) Create(c *gin.Context) {
	sessionID := uuid.New().String()

	token, err := GenerateToken(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": sessionID,
		"token":      token,
		"expires_at": time.Now().Add(24 * time.Hour),
	})
}
