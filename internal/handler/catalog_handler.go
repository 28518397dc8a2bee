package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"example.com/shop-go/internal/service"
)

// CatalogHandler renders the browsing pages: home, product detail, category
// filter and search.
type CatalogHandler struct {
	Store   *sessions.CookieStore
	Catalog service.CatalogService
}

func (h *CatalogHandler) Home(c *gin.Context) {
	page, err := h.Catalog.Items(pageNumber(c))
	if err != nil {
		c.String(http.StatusInternalServerError, "Could not load the catalog.")
		return
	}
	categories, err := h.Catalog.Categories()
	if err != nil {
		c.String(http.StatusInternalServerError, "Could not load the catalog.")
		return
	}

	c.HTML(http.StatusOK, "home.html", pageData(h.Store, c, gin.H{
		"Page":       page,
		"Categories": categories,
	}))
}

func (h *CatalogHandler) ItemDetail(c *gin.Context) {
	item, err := h.Catalog.ItemBySlug(c.Param("slug"))
	if errors.Is(err, service.ErrItemNotFound) {
		c.String(http.StatusNotFound, "Item not found.")
		return
	} else if err != nil {
		c.String(http.StatusInternalServerError, "Could not load the item.")
		return
	}

	c.HTML(http.StatusOK, "product.html", pageData(h.Store, c, gin.H{
		"Item": item,
	}))
}

func (h *CatalogHandler) FilterByCategory(c *gin.Context) {
	category, page, err := h.Catalog.ByCategory(c.Param("slug"), pageNumber(c))
	if errors.Is(err, service.ErrCategoryNotFound) {
		c.String(http.StatusNotFound, "Category not found.")
		return
	} else if err != nil {
		c.String(http.StatusInternalServerError, "Could not load the category.")
		return
	}
	categories, err := h.Catalog.Categories()
	if err != nil {
		c.String(http.StatusInternalServerError, "Could not load the catalog.")
		return
	}

	c.HTML(http.StatusOK, "category.html", pageData(h.Store, c, gin.H{
		"Category":   category,
		"Page":       page,
		"Categories": categories,
	}))
}

func (h *CatalogHandler) Search(c *gin.Context) {
	query := c.Query("search")
	page, err := h.Catalog.Search(query, pageNumber(c))
	if err != nil {
		c.String(http.StatusInternalServerError, "Search failed.")
		return
	}

	c.HTML(http.StatusOK, "search.html", pageData(h.Store, c, gin.H{
		"Query": query,
		"Page":  page,
	}))
}

func pageNumber(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
