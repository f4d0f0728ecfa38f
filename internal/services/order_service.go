package services

import (
	"errors"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"

	"gorm.io/gorm"
)

type CustomerInfo struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	Instructions string
}

type DashboardStats struct {
	PendingCount   int64
	ConfirmedCount int64
	TodayRevenue   float64
}

type OrderService interface {
	PlaceOrder(token string, info CustomerInfo) (*models.Order, error)
	GetOrder(id uint) (*models.Order, error)
	TrackOrder(id uint, email string) (*models.Order, error)
	GetAllOrders() ([]models.Order, error)
	GetRecentOrders(limit int) ([]models.Order, error)
	UpdateStatus(id uint, status string) (*models.Order, error)
	DeleteOrder(id uint) error
	GetDashboardStats() (*DashboardStats, error)
}

type orderService struct {
	orderRepo     repository.OrderRepository
	cart          CartService
	notifications NotificationService
	initialStatus string
}

func NewOrderService(orderRepo repository.OrderRepository, cart CartService, notifications NotificationService, initialStatus string) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		cart:          cart,
		notifications: notifications,
		initialStatus: initialStatus,
	}
}

// PlaceOrder converts the session cart into a persisted order. Totals come
// from the snapshot, not the live catalog, so prices are the ones the
// customer saw. On success the cart is cleared and the initial-status
// notification goes out.
func (s *orderService) PlaceOrder(token string, info CustomerInfo) (*models.Order, error) {
	entries, err := s.cart.Snapshot(token)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCart
	}

	totals := s.cart.Totals(entries)

	order := &models.Order{
		CustomerName:         info.Name,
		CustomerEmail:        info.Email,
		CustomerPhone:        info.Phone,
		DeliveryAddress:      info.Address,
		DeliveryInstructions: info.Instructions,
		Subtotal:             totals.Subtotal,
		DeliveryFee:          totals.DeliveryFee,
		Total:                totals.Total,
		Status:               s.initialStatus,
	}

	items := make([]models.OrderItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, models.OrderItem{
			MenuItemID: entry.MenuItemID,
			Quantity:   entry.Quantity,
			Price:      entry.UnitPrice,
		})
	}

	if err := s.orderRepo.CreateWithItems(order, items); err != nil {
		return nil, err
	}

	s.cart.Clear(token)
	s.notifications.NotifyStatusChange(order, order.Status)

	return order, nil
}

func (s *orderService) GetOrder(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// TrackOrder looks an order up by id and customer email. Both must match.
func (s *orderService) TrackOrder(id uint, email string) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndEmail(id, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) GetRecentOrders(limit int) ([]models.Order, error) {
	return s.orderRepo.GetRecent(limit)
}

// UpdateStatus moves an order to any recognized status. Transition legality
// is deliberately not enforced beyond the closed label set; see DESIGN.md.
func (s *orderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	if !models.IsValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}

	order.Status = status
	s.notifications.NotifyStatusChange(order, status)

	return order, nil
}

func (s *orderService) DeleteOrder(id uint) error {
	if _, err := s.GetOrder(id); err != nil {
		return err
	}
	return s.orderRepo.Delete(id)
}

func (s *orderService) GetDashboardStats() (*DashboardStats, error) {
	pending, err := s.orderRepo.CountByStatus(string(models.OrderPending))
	if err != nil {
		return nil, err
	}

	confirmed, err := s.orderRepo.CountByStatus(string(models.OrderConfirmed))
	if err != nil {
		return nil, err
	}

	revenue, err := s.orderRepo.TodayRevenue()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		PendingCount:   pending,
		ConfirmedCount: confirmed,
		TodayRevenue:   revenue,
	}, nil
}
