package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"example.com/shop-go/internal/database"
	"example.com/shop-go/internal/model"
)

// projectRoot finds the repository root from this file so the tests can load
// the real templates regardless of the working directory.
func projectRoot(t *testing.T) string {
	t.Helper()
	_, currentFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "could not resolve caller information")
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// setupRouter builds the full route table on an in-memory database.
func setupRouter(t *testing.T) (*gin.Engine, *sessions.CookieStore, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.LoadHTMLGlob(filepath.Join(projectRoot(t), "internal", "view", "templates", "*"))

	store := sessions.NewCookieStore([]byte("test-session-secret"))
	db := testDB(t)
	RegisterRoutes(router, db, store)
	return router, store, db
}

func createTestUser(t *testing.T, db *gorm.DB) model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := model.User{
		Name:         "Test Shopper",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: string(hash),
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestItem(t *testing.T, db *gorm.DB, title, price string) model.Item {
	t.Helper()
	category := model.Category{Name: "Test Category", Slug: "cat-" + uuid.NewString()}
	require.NoError(t, db.Create(&category).Error)

	item := model.Item{
		Title:      title,
		Price:      decimal.RequireFromString(price),
		CategoryID: category.ID,
		Label:      model.LabelPrimary,
		Slug:       "item-" + uuid.NewString(),
		ImageURL:   "/static/images/test.jpg",
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

// loginCookie forges a session cookie for the user, the same way the login
// handler would set one.
func loginCookie(t *testing.T, store *sessions.CookieStore, user model.User) *http.Cookie {
	t.Helper()
	values := map[interface{}]interface{}{
		"userID":   user.ID,
		"userName": user.Name,
	}
	encoded, err := securecookie.EncodeMulti(SessionName, values, store.Codecs...)
	require.NoError(t, err)
	return &http.Cookie{Name: SessionName, Value: encoded}
}

// decodeSession reads the session values out of a Set-Cookie response.
func decodeSession(t *testing.T, store *sessions.CookieStore, cookies []*http.Cookie) map[interface{}]interface{} {
	t.Helper()
	for _, cookie := range cookies {
		if cookie.Name != SessionName {
			continue
		}
		values := make(map[interface{}]interface{})
		err := securecookie.DecodeMulti(SessionName, cookie.Value, &values, store.Codecs...)
		require.NoError(t, err)
		return values
	}
	t.Fatalf("no %s cookie in response", SessionName)
	return nil
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// flashMessages extracts the flash strings for one category from decoded
// session values.
func flashMessages(values map[interface{}]interface{}, category string) []string {
	raw, ok := values[category].([]interface{})
	if !ok {
		return nil
	}
	var messages []string
	for _, m := range raw {
		if s, ok := m.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
