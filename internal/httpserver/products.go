package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"luxestore-be/internal/catalog"
)

func (h *handlers) listProducts(c *gin.Context) {
	f := catalog.Filter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     catalog.ParseSortKey(c.Query("sort")),
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		f.MinPrice = v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		f.MaxPrice = v
	}

	page := 1
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	pageSize := catalog.DefaultPageSize
	if v, err := strconv.Atoi(c.Query("page_size")); err == nil && v > 0 {
		pageSize = v
	}

	result, err := h.deps.Catalog.Browse(c.Request.Context(), f, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Browsing remembers the shopper's last search and category.
	if sess, ok := h.trySession(c); ok {
		sess.Store.SetSearchQuery(f.Search)
		if f.Category != "" {
			sess.Store.SetSelectedCategory(f.Category)
		}
	}

	c.JSON(http.StatusOK, result)
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.deps.Catalog.Get(c.Request.Context(), c.Param("productID"))
	if errors.Is(err, catalog.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return
	}

	// Viewing a product detail page records it in the caller's history.
	if sess, ok := h.trySession(c); ok {
		sess.Store.AddToRecentlyViewed(*p, time.Now())
	}

	c.JSON(http.StatusOK, p)
}

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.deps.Catalog.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *handlers) listRecentlyViewed(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": sess.Store.RecentlyViewed()})
}
