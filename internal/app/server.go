package app

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"example.com/shop-go/internal/database"
	"example.com/shop-go/internal/handler"
)

// NewServer connects the database, builds the router and returns it with a
// cleanup func that closes the connection pool.
func NewServer(cfg Config) (*gin.Engine, func(), error) {
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	database.Seed(db)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.LoadHTMLGlob("internal/view/templates/*")

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	handler.RegisterRoutes(router, db, store)

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return router, cleanup, nil
}
