package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"luxestore-be/internal/catalog"
	"luxestore-be/internal/middleware"
	"luxestore-be/internal/review"
)

type createReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (h *handlers) listReviews(c *gin.Context) {
	reviews, err := h.deps.Reviews.ListByProduct(c.Request.Context(), c.Param("productID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
		return
	}
	if reviews == nil {
		reviews = []review.Review{}
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *handlers) createReview(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	productID := c.Param("productID")
	if _, err := h.deps.Catalog.Get(c.Request.Context(), productID); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return
	}

	rv, err := h.deps.Reviews.Create(c.Request.Context(), productID, userID, req.Rating, req.Comment)
	if errors.Is(err, review.ErrInvalidRating) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, rv)
}
