package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/shop-go/internal/model"
)

func postForm(router http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func checkoutForm() url.Values {
	return url.Values{
		"first_name":     {"Ada"},
		"last_name":      {"Lovelace"},
		"email":          {"ada@example.com"},
		"phone_number":   {"+440000000"},
		"street_address": {"London, 1234 Main St"},
		"country":        {"GB"},
		"zip":            {"E1 6AN"},
	}
}

func TestCheckoutPlacesOrder(t *testing.T) {
	router, store, db := setupRouter(t)
	user := createTestUser(t, db)
	item := createTestItem(t, db, "Blue Shirt", "10.00")
	cookie := loginCookie(t, store, user)

	addReq := httptest.NewRequest(http.MethodGet, "/add-to-cart/"+item.Slug, nil)
	addReq.AddCookie(cookie)
	router.ServeHTTP(httptest.NewRecorder(), addReq)

	recorder := postForm(router, "/checkout", checkoutForm(), cookie)
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))

	values := decodeSession(t, store, recorder.Result().Cookies())
	assert.Contains(t, flashMessages(values, FlashSuccess), "Your order was successful!")

	var order model.Order
	require.NoError(t, db.Preload("BillingAddress").Where("user_id = ?", user.ID).First(&order).Error)
	assert.True(t, order.Ordered)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{10}$`), order.RefCode)
	require.NotNil(t, order.BillingAddress)
	assert.Equal(t, "Ada", order.BillingAddress.FirstName)
}

func TestCheckoutRejectsIncompleteForm(t *testing.T) {
	router, store, db := setupRouter(t)
	user := createTestUser(t, db)
	item := createTestItem(t, db, "Blue Shirt", "10.00")
	cookie := loginCookie(t, store, user)

	addReq := httptest.NewRequest(http.MethodGet, "/add-to-cart/"+item.Slug, nil)
	addReq.AddCookie(cookie)
	router.ServeHTTP(httptest.NewRecorder(), addReq)

	form := checkoutForm()
	form.Del("zip")

	recorder := postForm(router, "/checkout", form, cookie)
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/checkout", recorder.Header().Get("Location"))

	values := decodeSession(t, store, recorder.Result().Cookies())
	assert.Contains(t, flashMessages(values, FlashWarning), "Failed checkout.")

	var order model.Order
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&order).Error)
	assert.False(t, order.Ordered)
}

func TestCheckoutWithoutOpenOrder(t *testing.T) {
	router, store, db := setupRouter(t)
	user := createTestUser(t, db)

	recorder := postForm(router, "/checkout", checkoutForm(), loginCookie(t, store, user))
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/order-summary", recorder.Header().Get("Location"))

	values := decodeSession(t, store, recorder.Result().Cookies())
	assert.Contains(t, flashMessages(values, FlashError), "You don't have an active order.")
}
