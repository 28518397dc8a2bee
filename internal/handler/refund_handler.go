package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"example.com/shop-go/internal/service"
)

// RefundHandler serves the anonymous refund-request form. The reference code
// is the only credential.
type RefundHandler struct {
	Store   *sessions.CookieStore
	Refunds service.RefundService
}

func (h *RefundHandler) ShowRefundForm(c *gin.Context) {
	c.HTML(http.StatusOK, "request_refund.html", pageData(h.Store, c, nil))
}

func (h *RefundHandler) ProcessRefundForm(c *gin.Context) {
	input := service.RefundInput{
		RefCode:     c.PostForm("ref_code"),
		Reason:      c.PostForm("message"),
		PhoneNumber: c.PostForm("phone_number"),
		Email:       c.PostForm("email"),
	}

	err := h.Refunds.Request(input)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		addFlash(h.Store, c, FlashInfo, "This order does not exist.")
	case err != nil:
		addFlash(h.Store, c, FlashError, "Could not submit your request. Try again.")
	default:
		addFlash(h.Store, c, FlashSuccess, "Your request was received.")
	}
	c.Redirect(http.StatusFound, "/request-refund")
}
