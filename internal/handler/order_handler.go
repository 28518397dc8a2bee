package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"example.com/shop-go/internal/service"
)

// OrderHandler shows past orders.
type OrderHandler struct {
	Store  *sessions.CookieStore
	Orders service.OrderService
}

func (h *OrderHandler) OrderList(c *gin.Context) {
	user, _ := sessionUser(c)

	orders, err := h.Orders.ForUser(user.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Could not load your orders.")
		return
	}
	if len(orders) == 0 {
		addFlash(h.Store, c, FlashInfo, "You have no orders.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "order_list.html", pageData(h.Store, c, gin.H{
		"Orders": orders,
	}))
}

func (h *OrderHandler) OrderDetail(c *gin.Context) {
	pk, err := strconv.ParseUint(c.Param("pk"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid order id.")
		return
	}

	order, err := h.Orders.ByID(uint(pk))
	if errors.Is(err, service.ErrOrderNotFound) {
		c.String(http.StatusNotFound, "Order not found.")
		return
	} else if err != nil {
		c.String(http.StatusInternalServerError, "Could not load the order.")
		return
	}

	c.HTML(http.StatusOK, "order_detail.html", pageData(h.Store, c, gin.H{
		"Order": order,
	}))
}
