package repository

import (
	"food_ordering/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	CreateWithItems(order *models.Order, items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetByIDAndEmail(id uint, email string) (*models.Order, error)
	GetAll() ([]models.Order, error)
	GetRecent(limit int) ([]models.Order, error)
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
	CountByStatus(status string) (int64, error)
	TodayRevenue() (float64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithItems writes the order and its line items in one transaction.
// Either everything commits or nothing does.
func (r *orderRepository) CreateWithItems(order *models.Order, items []models.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}

		order.Items = items
		return nil
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByIDAndEmail(id uint, email string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Where("id = ? AND customer_email = ?", id, email).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetRecent(limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("created_at DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(id uint, status string) error {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}

func (r *orderRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *orderRepository) TodayRevenue() (float64, error) {
	var revenue float64
	err := r.db.Model(&models.Order{}).
		Where("DATE(created_at) = CURRENT_DATE").
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue).Error
	return revenue, err
}
