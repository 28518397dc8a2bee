package handler

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"example.com/shop-go/internal/model"
)

// SessionName is the cookie carrying the login session and flash messages.
const SessionName = "shop-session"

// Flash categories. Mutating endpoints answer with a redirect plus one of
// these one-shot messages instead of a structured status.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashError   = "error"
)

func getSession(store *sessions.CookieStore, c *gin.Context) *sessions.Session {
	session, _ := store.Get(c.Request, SessionName)
	return session
}

func addFlash(store *sessions.CookieStore, c *gin.Context, category, message string) {
	session := getSession(store, c)
	session.AddFlash(message, category)
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Printf("save session: %v", err)
	}
}

// popFlashes drains every flash category into template data.
func popFlashes(store *sessions.CookieStore, c *gin.Context) gin.H {
	session := getSession(store, c)
	data := gin.H{
		"FlashesSuccess": session.Flashes(FlashSuccess),
		"FlashesInfo":    session.Flashes(FlashInfo),
		"FlashesWarning": session.Flashes(FlashWarning),
		"FlashesError":   session.Flashes(FlashError),
	}
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Printf("save session: %v", err)
	}
	return data
}

// sessionUser reads the user placed in the context by LoadUser/AuthRequired.
func sessionUser(c *gin.Context) (model.User, bool) {
	data, exists := c.Get("user")
	if !exists {
		return model.User{}, false
	}
	user, ok := data.(model.User)
	return user, ok
}

// pageData merges flashes, login state, and handler-specific values into one
// template context.
func pageData(store *sessions.CookieStore, c *gin.Context, extra gin.H) gin.H {
	data := popFlashes(store, c)
	user, isLoggedIn := sessionUser(c)
	data["User"] = user
	data["IsLoggedIn"] = isLoggedIn
	for k, v := range extra {
		data[k] = v
	}
	return data
}
