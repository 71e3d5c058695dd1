package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"luxestore-be/internal/catalog"
	"luxestore-be/internal/state"
)

type addToCartRequest struct {
	ProductID string         `json:"product_id" binding:"required"`
	Variant   *state.Variant `json:"selectedVariant"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func cartResponse(store *state.Store) gin.H {
	return gin.H{
		"items": store.Cart(),
		"total": store.CartTotal(),
		"count": store.CartCount(),
	}
}

func (h *handlers) getCart(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cartResponse(sess.Store))
}

func (h *handlers) addToCart(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.deps.Catalog.Get(c.Request.Context(), req.ProductID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return
	}

	sess.Store.AddToCart(*p, req.Variant)
	c.JSON(http.StatusOK, cartResponse(sess.Store))
}

func (h *handlers) updateCartQuantity(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess.Store.UpdateCartQuantity(c.Param("productID"), req.Quantity)
	c.JSON(http.StatusOK, cartResponse(sess.Store))
}

func (h *handlers) removeFromCart(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	sess.Store.RemoveFromCart(c.Param("productID"))
	c.JSON(http.StatusOK, cartResponse(sess.Store))
}

func (h *handlers) clearCart(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	sess.Store.ClearCart()
	c.JSON(http.StatusOK, cartResponse(sess.Store))
}
