package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/shop-go/internal/model"
)

func TestFileReport(t *testing.T) {
	db := testDB(t)
	cart := NewCartService(db)
	checkout := NewCheckoutService(db)
	reports := NewReportService(db)
	user := createTestUser(t, db)
	item := createTestItem(t, db, "Blue Shirt", "10.00", nil)
	order := placeTestOrder(t, cart, checkout, user.ID, item.Slug)

	err := reports.File(ReportInput{
		RefCode:     order.RefCode,
		Reason:      "wrong size delivered",
		FullName:    "Ada Lovelace",
		PhoneNumber: "+440000000",
		Email:       "ada@example.com",
	})
	require.NoError(t, err)

	var report model.Report
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&report).Error)
	assert.Equal(t, order.RefCode, report.RefCode, "ref code is copied onto the report")
	assert.Equal(t, "wrong size delivered", report.Reason)

	// Filing never touches the order itself.
	var reloaded model.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.False(t, reloaded.RefundRequested)
	assert.False(t, reloaded.Received)
}

func TestFileReportUnknownRefCode(t *testing.T) {
	db := testDB(t)
	reports := NewReportService(db)

	err := reports.File(ReportInput{RefCode: "NOSUCHCODE", Reason: "x"})
	assert.ErrorIs(t, err, ErrOrderNotFound)

	var count int64
	require.NoError(t, db.Model(&model.Report{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestFileReportTwiceKeepsBothRows(t *testing.T) {
	db := testDB(t)
	cart := NewCartService(db)
	checkout := NewCheckoutService(db)
	reports := NewReportService(db)
	user := createTestUser(t, db)
	item := createTestItem(t, db, "Blue Shirt", "10.00", nil)
	order := placeTestOrder(t, cart, checkout, user.ID, item.Slug)

	for i := 0; i < 2; i++ {
		require.NoError(t, reports.File(ReportInput{
			RefCode: order.RefCode, Reason: "issue", FullName: "Ada Lovelace",
		}))
	}

	var count int64
	require.NoError(t, db.Model(&model.Report{}).Where("ref_code = ?", order.RefCode).Count(&count).Error)
	assert.EqualValues(t, 2, count, "reports are independent rows")
}
