package repository

import (
	"food_ordering/internal/models"

	"gorm.io/gorm"
)

type MenuItemRepository interface {
	Create(item *models.MenuItem) error
	GetByID(id uint) (*models.MenuItem, error)
	GetAll() ([]models.MenuItem, error)
	GetAvailable() ([]models.MenuItem, error)
	GetAvailableByCategory(categoryID uint) ([]models.MenuItem, error)
	GetPopular(limit int) ([]models.MenuItem, error)
	Update(item *models.MenuItem) error
	Delete(id uint) error
}

type menuItemRepository struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *menuItemRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Order("id").Find(&items).Error
	return items, err
}

func (r *menuItemRepository) GetAvailable() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("is_available = ?", true).Order("id").Find(&items).Error
	return items, err
}

func (r *menuItemRepository) GetAvailableByCategory(categoryID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("category_id = ? AND is_available = ?", categoryID, true).Order("id").Find(&items).Error
	return items, err
}

func (r *menuItemRepository) GetPopular(limit int) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("is_popular = ? AND is_available = ?", true, true).Limit(limit).Find(&items).Error
	return items, err
}

func (r *menuItemRepository) Update(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *menuItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.MenuItem{}, id).Error
}
