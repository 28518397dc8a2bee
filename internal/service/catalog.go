package service

import (
	"errors"

	"gorm.io/gorm"

	"example.com/shop-go/internal/model"
)

// PageSize is the catalog page length.
const PageSize = 12

// Page is one slice of a paginated item listing.
type Page struct {
	Items      []model.Item
	Number     int
	TotalPages int
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.TotalPages }
func (p Page) Prev() int     { return p.Number - 1 }
func (p Page) Next() int     { return p.Number + 1 }

// CatalogService is the read-only catalog surface: listings, category
// filtering and title search, all paginated.
type CatalogService interface {
	Items(page int) (Page, error)
	ByCategory(slug string, page int) (model.Category, Page, error)
	Search(query string, page int) (Page, error)
	ItemBySlug(slug string) (model.Item, error)
	Categories() ([]model.Category, error)
}

type catalogService struct{ db *gorm.DB }

func NewCatalogService(db *gorm.DB) CatalogService { return &catalogService{db: db} }

func (s *catalogService) Items(page int) (Page, error) {
	return paginate(s.db.Model(&model.Item{}).Order("id asc"), page)
}

func (s *catalogService) ByCategory(slug string, page int) (model.Category, Page, error) {
	var category model.Category
	err := s.db.Where("slug = ?", slug).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Category{}, Page{}, ErrCategoryNotFound
	} else if err != nil {
		return model.Category{}, Page{}, err
	}

	query := s.db.Model(&model.Item{}).
		Where("category_id = ?", category.ID).
		Order("id asc")
	p, err := paginate(query, page)
	return category, p, err
}

func (s *catalogService) Search(query string, page int) (Page, error) {
	if query == "" {
		return Page{Number: 1, TotalPages: 1}, nil
	}
	return paginate(
		s.db.Model(&model.Item{}).Where("title LIKE ?", "%"+query+"%").Order("id asc"),
		page,
	)
}

func (s *catalogService) ItemBySlug(slug string) (model.Item, error) {
	var item model.Item
	err := s.db.Preload("Category").Where("slug = ?", slug).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Item{}, ErrItemNotFound
	}
	return item, err
}

func (s *catalogService) Categories() ([]model.Category, error) {
	var categories []model.Category
	return categories, s.db.Order("name asc").Find(&categories).Error
}

func paginate(query *gorm.DB, page int) (Page, error) {
	if page < 1 {
		page = 1
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return Page{}, err
	}
	totalPages := int((count + PageSize - 1) / PageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	var items []model.Item
	err := query.Offset((page - 1) * PageSize).Limit(PageSize).Find(&items).Error
	if err != nil {
		return Page{}, err
	}
	return Page{Items: items, Number: page, TotalPages: totalPages}, nil
}
