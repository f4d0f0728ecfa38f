package services

import (
	"errors"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"

	"gorm.io/gorm"
)

type CatalogService interface {
	GetCategories() ([]models.Category, error)
	GetCategory(id uint) (*models.Category, error)
	CreateCategory(category *models.Category) error
	DeleteCategory(id uint) error

	GetMenu(categoryID uint) ([]models.MenuItem, error)
	GetPopularItems(limit int) ([]models.MenuItem, error)
	GetMenuItem(id uint) (*models.MenuItem, error)
	GetAllMenuItems() ([]models.MenuItem, error)
	CreateMenuItem(item *models.MenuItem) error
	UpdateMenuItem(item *models.MenuItem) error
	DeleteMenuItem(id uint) error
	ToggleAvailability(id uint) (*models.MenuItem, error)
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	menuRepo     repository.MenuItemRepository
}

func NewCatalogService(categoryRepo repository.CategoryRepository, menuRepo repository.MenuItemRepository) CatalogService {
	return &catalogService{categoryRepo: categoryRepo, menuRepo: menuRepo}
}

func (s *catalogService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *catalogService) GetCategory(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) CreateCategory(category *models.Category) error {
	if category.Icon == "" {
		category.Icon = "fa-utensils"
	}
	return s.categoryRepo.Create(category)
}

// DeleteCategory refuses to remove a category that menu items still
// reference. No cascade.
func (s *catalogService) DeleteCategory(id uint) error {
	if _, err := s.GetCategory(id); err != nil {
		return err
	}

	count, err := s.categoryRepo.CountMenuItems(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	return s.categoryRepo.Delete(id)
}

// GetMenu returns available items, filtered by category when categoryID is
// non-zero.
func (s *catalogService) GetMenu(categoryID uint) ([]models.MenuItem, error) {
	if categoryID == 0 {
		return s.menuRepo.GetAvailable()
	}
	return s.menuRepo.GetAvailableByCategory(categoryID)
}

func (s *catalogService) GetPopularItems(limit int) ([]models.MenuItem, error) {
	return s.menuRepo.GetPopular(limit)
}

func (s *catalogService) GetMenuItem(id uint) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *catalogService) GetAllMenuItems() ([]models.MenuItem, error) {
	return s.menuRepo.GetAll()
}

func (s *catalogService) CreateMenuItem(item *models.MenuItem) error {
	return s.menuRepo.Create(item)
}

func (s *catalogService) UpdateMenuItem(item *models.MenuItem) error {
	if _, err := s.GetMenuItem(item.ID); err != nil {
		return err
	}
	return s.menuRepo.Update(item)
}

func (s *catalogService) DeleteMenuItem(id uint) error {
	if _, err := s.GetMenuItem(id); err != nil {
		return err
	}
	return s.menuRepo.Delete(id)
}

// ToggleAvailability flips the soft-hide flag without deleting the item.
func (s *catalogService) ToggleAvailability(id uint) (*models.MenuItem, error) {
	item, err := s.GetMenuItem(id)
	if err != nil {
		return nil, err
	}

	item.IsAvailable = !item.IsAvailable
	if err := s.menuRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}
