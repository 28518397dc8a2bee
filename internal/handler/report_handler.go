package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"example.com/shop-go/internal/service"
)

// ReportHandler serves the order-issue report form. The form is pre-filled
// from the order named in the URL, but the submitted reference code decides
// which order the report is filed against.
type ReportHandler struct {
	Store   *sessions.CookieStore
	Orders  service.OrderService
	Reports service.ReportService
}

func (h *ReportHandler) ShowReportForm(c *gin.Context) {
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

	prefill := gin.H{
		"Order":       order,
		"RefCode":     order.RefCode,
		"FullName":    "",
		"PhoneNumber": "",
		"Email":       "",
	}
	if order.BillingAddress != nil {
		prefill["FullName"] = order.BillingAddress.FullName()
		prefill["PhoneNumber"] = order.BillingAddress.PhoneNumber
		prefill["Email"] = order.BillingAddress.Email
	}
	c.HTML(http.StatusOK, "report.html", pageData(h.Store, c, prefill))
}

func (h *ReportHandler) ProcessReportForm(c *gin.Context) {
	input := service.ReportInput{
		RefCode:     c.PostForm("ref_code"),
		Reason:      c.PostForm("message"),
		FullName:    c.PostForm("full_name"),
		PhoneNumber: c.PostForm("phone_number"),
		Email:       c.PostForm("email"),
	}

	err := h.Reports.File(input)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		addFlash(h.Store, c, FlashInfo, "This order does not exist.")
	case err != nil:
		addFlash(h.Store, c, FlashError, "Could not send your report. Try again.")
	default:
		addFlash(h.Store, c, FlashInfo, "Your report has been sent.")
	}
	c.Redirect(http.StatusFound, "/order-list")
}
