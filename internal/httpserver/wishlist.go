package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"luxestore-be/internal/catalog"
)

type toggleWishlistRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

func (h *handlers) getWishlist(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": sess.Store.Wishlist()})
}

func (h *handlers) toggleWishlist(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req toggleWishlistRequest
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

	sess.Store.ToggleWishlist(*p)
	c.JSON(http.StatusOK, gin.H{
		"in_wishlist": sess.Store.IsInWishlist(p.ID),
		"items":       sess.Store.Wishlist(),
	})
}
