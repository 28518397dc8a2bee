package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"example.com/shop-go/internal/model"
)

// AuthHandler owns registration, login and the session middleware. The cart
// and checkout workflows treat it as a collaborator: they only see the user
// it places in the request context.
type AuthHandler struct {
	DB    *gorm.DB
	Store *sessions.CookieStore
}

func (h *AuthHandler) ShowRegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", pageData(h.Store, c, nil))
}

func (h *AuthHandler) ProcessRegisterForm(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")

	if name == "" || email == "" || password == "" {
		addFlash(h.Store, c, FlashError, "All fields are required.")
		c.Redirect(http.StatusFound, "/register")
		return
	}
	if password != confirm {
		addFlash(h.Store, c, FlashError, "Passwords do not match.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		addFlash(h.Store, c, FlashError, "Could not process the password. Try again.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	user := model.User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := h.DB.Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "unique constraint") || strings.Contains(err.Error(), "duplicate key") {
			addFlash(h.Store, c, FlashError, "This e-mail is already registered.")
		} else {
			addFlash(h.Store, c, FlashError, "Could not create the account. Try again.")
		}
		c.Redirect(http.StatusFound, "/register")
		return
	}

	addFlash(h.Store, c, FlashSuccess, "Account created. Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", pageData(h.Store, c, nil))
}

func (h *AuthHandler) ProcessLoginForm(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	var user model.User
	err := h.DB.Where("email = ?", email).First(&user).Error
	if err == nil {
		err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	}
	if err != nil {
		addFlash(h.Store, c, FlashError, "Invalid e-mail or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	session := getSession(h.Store, c)
	session.Values["userID"] = user.ID
	session.Values["userName"] = user.Name
	if err := session.Save(c.Request, c.Writer); err != nil {
		addFlash(h.Store, c, FlashError, "Could not start the session. Try again.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := getSession(h.Store, c)
	session.Values["userID"] = nil
	session.Values["userName"] = nil
	session.Options.MaxAge = -1
	if err := session.Save(c.Request, c.Writer); err != nil {
		c.String(http.StatusInternalServerError, "Could not log out.")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// LoadUser puts the logged-in user into the context when there is one. It
// never aborts; public pages use it for the navigation state.
func (h *AuthHandler) LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := getSession(h.Store, c)
		userID, ok := session.Values["userID"].(uint)
		if ok {
			var user model.User
			if err := h.DB.First(&user, userID).Error; err == nil {
				c.Set("user", user)
			}
		}
		c.Next()
	}
}

// AuthRequired redirects to the login page unless the session resolves to a
// real user.
func (h *AuthHandler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := getSession(h.Store, c)
		userID, ok := session.Values["userID"].(uint)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		var user model.User
		if err := h.DB.First(&user, userID).Error; err != nil {
			session.Values["userID"] = nil
			session.Values["userName"] = nil
			session.Options.MaxAge = -1
			session.Save(c.Request, c.Writer)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}
