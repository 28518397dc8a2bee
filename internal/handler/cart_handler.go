package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"example.com/shop-go/internal/service"
)

// CartHandler maps the cart endpoints to the cart workflow. Every mutation
// answers with a redirect plus a one-shot flash message; failed preconditions
// are messages, not error codes.
type CartHandler struct {
	Store *sessions.CookieStore
	Cart  service.CartService
}

// AddToCart adds one unit of the item to the user's open order, creating the
// order on first add.
func (h *CartHandler) AddToCart(c *gin.Context) {
	slug := c.Param("slug")
	user, _ := sessionUser(c)

	added, err := h.Cart.AddItem(user.ID, slug)
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		c.String(http.StatusNotFound, "Item not found.")
	case err != nil:
		addFlash(h.Store, c, FlashError, "Could not update your cart. Try again.")
		c.Redirect(http.StatusFound, "/product/"+slug)
	case added:
		addFlash(h.Store, c, FlashInfo, "Item was added to your cart.")
		c.Redirect(http.StatusFound, "/product/"+slug)
	default:
		addFlash(h.Store, c, FlashInfo, "Item quantity was updated.")
		c.Redirect(http.StatusFound, "/order-summary")
	}
}

// RemoveFromCart unlinks the item from the open order regardless of quantity.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	user, _ := sessionUser(c)

	err := h.Cart.RemoveItem(user.ID, c.Param("slug"))
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		c.String(http.StatusNotFound, "Item not found.")
		return
	case errors.Is(err, service.ErrNoActiveOrder):
		addFlash(h.Store, c, FlashInfo, "You don't have an active order.")
	case errors.Is(err, service.ErrItemNotInCart):
		addFlash(h.Store, c, FlashInfo, "This item was not in your cart.")
	case err != nil:
		addFlash(h.Store, c, FlashError, "Could not update your cart. Try again.")
	default:
		addFlash(h.Store, c, FlashInfo, "This item was removed from your cart.")
	}
	c.Redirect(http.StatusFound, "/order-summary")
}

// RemoveSingleItem decrements the item quantity by one, unlinking the item
// when it was the last unit.
func (h *CartHandler) RemoveSingleItem(c *gin.Context) {
	slug := c.Param("slug")
	user, _ := sessionUser(c)

	err := h.Cart.DecreaseItem(user.ID, slug)
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		c.String(http.StatusNotFound, "Item not found.")
	case errors.Is(err, service.ErrNoActiveOrder):
		addFlash(h.Store, c, FlashInfo, "You don't have an active order.")
		c.Redirect(http.StatusFound, "/product/"+slug)
	case errors.Is(err, service.ErrItemNotInCart):
		addFlash(h.Store, c, FlashInfo, "This item was not in your cart.")
		c.Redirect(http.StatusFound, "/product/"+slug)
	case err != nil:
		addFlash(h.Store, c, FlashError, "Could not update your cart. Try again.")
		c.Redirect(http.StatusFound, "/order-summary")
	default:
		addFlash(h.Store, c, FlashInfo, "This item quantity was updated.")
		c.Redirect(http.StatusFound, "/order-summary")
	}
}

// OrderSummary shows the open order.
func (h *CartHandler) OrderSummary(c *gin.Context) {
	user, _ := sessionUser(c)

	order, err := h.Cart.OpenOrder(user.ID)
	if errors.Is(err, service.ErrNoActiveOrder) {
		addFlash(h.Store, c, FlashError, "You don't have an active order.")
		c.Redirect(http.StatusFound, "/")
		return
	} else if err != nil {
		c.String(http.StatusInternalServerError, "Could not load your order.")
		return
	}

	c.HTML(http.StatusOK, "order_summary.html", pageData(h.Store, c, gin.H{
		"Order": order,
	}))
}
