package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"example.com/shop-go/internal/service"
)

// CheckoutHandler renders the checkout form and drives the one-way
// open-to-ordered transition.
type CheckoutHandler struct {
	Store    *sessions.CookieStore
	Cart     service.CartService
	Checkout service.CheckoutService
}

func (h *CheckoutHandler) ShowCheckoutPage(c *gin.Context) {
	user, _ := sessionUser(c)

	order, err := h.Cart.OpenOrder(user.ID)
	if errors.Is(err, service.ErrNoActiveOrder) {
		addFlash(h.Store, c, FlashError, "You don't have an active order.")
		c.Redirect(http.StatusFound, "/order-summary")
		return
	} else if err != nil {
		c.String(http.StatusInternalServerError, "Could not load your order.")
		return
	}

	c.HTML(http.StatusOK, "checkout.html", pageData(h.Store, c, gin.H{
		"Order": order,
	}))
}

func (h *CheckoutHandler) ProcessCheckoutForm(c *gin.Context) {
	user, _ := sessionUser(c)

	input := service.CheckoutInput{
		FirstName:     c.PostForm("first_name"),
		LastName:      c.PostForm("last_name"),
		Email:         c.PostForm("email"),
		PhoneNumber:   c.PostForm("phone_number"),
		StreetAddress: c.PostForm("street_address"),
		Country:       c.PostForm("country"),
		Zip:           c.PostForm("zip"),
	}

	_, err := h.Checkout.Checkout(user.ID, input)
	switch {
	case errors.Is(err, service.ErrCheckoutInvalid):
		addFlash(h.Store, c, FlashWarning, "Failed checkout.")
		c.Redirect(http.StatusFound, "/checkout")
	case errors.Is(err, service.ErrNoActiveOrder):
		addFlash(h.Store, c, FlashError, "You don't have an active order.")
		c.Redirect(http.StatusFound, "/order-summary")
	case err != nil:
		addFlash(h.Store, c, FlashError, "Could not place your order. Try again.")
		c.Redirect(http.StatusFound, "/checkout")
	default:
		addFlash(h.Store, c, FlashSuccess, "Your order was successful!")
		c.Redirect(http.StatusFound, "/")
	}
}

// ShowPaymentPage renders the payment placeholder. Gateway integration is a
// separate concern; nothing here touches orders.
func (h *CheckoutHandler) ShowPaymentPage(c *gin.Context) {
	c.HTML(http.StatusOK, "payment.html", pageData(h.Store, c, nil))
}
