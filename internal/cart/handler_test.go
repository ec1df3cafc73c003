package cart

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lulukitchen/lulu-engine/internal/kv"
)

func newCartRouter(backing kv.Store) *gin.Engine {
	handler := NewHandler(backing)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("sessionID", "test-session")
		c.Next()
	})
	router.GET("/cart", handler.Get)
	router.POST("/cart/items", handler.AddItem)
	router.DELETE("/cart/items/:id", handler.RemoveItem)
	router.DELETE("/cart", handler.Clear)
	return router
}

func TestCartHandler_AddAndGet(t *testing.T) {
	router := newCartRouter(kv.NewMemoryStore())

	body := `{"id":"falafel","qty":2,"unitPrice":16,"total":32}`
	req := httptest.NewRequest("POST", "/cart/items", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}

	req = httptest.NewRequest("GET", "/cart", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), `"subtotal":32`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestCartHandler_RejectsInvalidItem(t *testing.T) {
	router := newCartRouter(kv.NewMemoryStore())

	body := `{"id":"","qty":0}`
	req := httptest.NewRequest("POST", "/cart/items", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestCartHandler_RemoveAndClear(t *testing.T) {
	backing := kv.NewMemoryStore()
	router := newCartRouter(backing)

	for _, body := range []string{
		`{"id":"a","qty":1,"unitPrice":10,"total":10}`,
		`{"id":"b","qty":1,"unitPrice":5,"total":5}`,
	} {
		req := httptest.NewRequest("POST", "/cart/items", strings.NewReader(body))
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	req := httptest.NewRequest("DELETE", "/cart/items/a", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	req = httptest.NewRequest("GET", "/cart", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if strings.Contains(w.Body.String(), `"id":"a"`) {
		t.Errorf("expected a removed, got %s", w.Body.String())
	}

	req = httptest.NewRequest("DELETE", "/cart", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest("GET", "/cart", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if !strings.Contains(w.Body.String(), `"subtotal":0`) {
		t.Errorf("expected empty cart, got %s", w.Body.String())
	}
}
