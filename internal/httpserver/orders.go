package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"luxestore-be/internal/middleware"
	"luxestore-be/internal/order"
)

func (h *handlers) createOrder(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	sess, ok := h.session(c)
	if !ok {
		return
	}

	o, err := h.deps.Orders.Create(c.Request.Context(), userID, sess.Store.Cart())
	if errors.Is(err, order.ErrCartEmpty) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		return
	}

	// Checkout empties the cart only once the order is stored.
	sess.Store.ClearCart()
	c.JSON(http.StatusCreated, o)
}

func (h *handlers) listOrders(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	orders, err := h.deps.Orders.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
