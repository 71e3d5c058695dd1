package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"luxestore-be/internal/catalog"
	"luxestore-be/internal/state"
)

func comparisonResponse(cmp *state.Comparison) gin.H {
	return gin.H{
		"products": cmp.Products(),
		"isOpen":   cmp.Open(),
	}
}

func (h *handlers) getComparison(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, comparisonResponse(sess.Comparison))
}

func (h *handlers) addToComparison(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	p, err := h.deps.Catalog.Get(c.Request.Context(), c.Param("productID"))
	if errors.Is(err, catalog.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return
	}

	if !sess.Comparison.Add(*p) {
		c.JSON(http.StatusConflict, gin.H{"error": "comparison holds at most 4 products"})
		return
	}
	sess.Comparison.SetOpen(true)
	c.JSON(http.StatusOK, comparisonResponse(sess.Comparison))
}

func (h *handlers) removeFromComparison(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	sess.Comparison.Remove(c.Param("productID"))
	c.JSON(http.StatusOK, comparisonResponse(sess.Comparison))
}

func (h *handlers) clearComparison(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	sess.Comparison.Clear()
	c.JSON(http.StatusOK, comparisonResponse(sess.Comparison))
}
