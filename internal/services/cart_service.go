package services

import (
	"errors"
	"math"
	"time"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"

	"gorm.io/gorm"
)

const (
	CartActionIncrease = "increase"
	CartActionDecrease = "decrease"
	CartActionRemove   = "remove"
)

// CartStore is the session-scoped persistence behind the cart. The redis
// client implements it.
type CartStore interface {
	GetCart(token string) ([]models.CartEntry, error)
	SaveCart(token string, entries []models.CartEntry, ttl time.Duration) error
	ClearCart(token string) error
}

type CartService interface {
	Add(token string, itemID uint) (*models.CartEntry, error)
	Update(token string, itemID uint, action string) error
	Snapshot(token string) ([]models.CartEntry, error)
	Totals(entries []models.CartEntry) models.CartTotals
	Count(entries []models.CartEntry) int
	Clear(token string) error
}

type cartService struct {
	store       CartStore
	menuRepo    repository.MenuItemRepository
	deliveryFee float64
	ttl         time.Duration
}

func NewCartService(store CartStore, menuRepo repository.MenuItemRepository, deliveryFee float64, ttl time.Duration) CartService {
	return &cartService{
		store:       store,
		menuRepo:    menuRepo,
		deliveryFee: deliveryFee,
		ttl:         ttl,
	}
}

// Add puts one unit of the item into the session cart, snapshotting name,
// price and image at add-time. A mid-session menu edit does not touch
// entries already in the cart.
func (s *cartService) Add(token string, itemID uint) (*models.CartEntry, error) {
	item, err := s.menuRepo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	if !item.IsAvailable {
		return nil, ErrMenuItemNotFound
	}

	entries, err := s.store.GetCart(token)
	if err != nil {
		return nil, err
	}

	var entry *models.CartEntry
	for i := range entries {
		if entries[i].MenuItemID == itemID {
			entries[i].Quantity++
			entry = &entries[i]
			break
		}
	}
	if entry == nil {
		entries = append(entries, models.CartEntry{
			MenuItemID: item.ID,
			Name:       item.Name,
			UnitPrice:  item.Price,
			ImageURL:   item.ImageURL,
			Quantity:   1,
		})
		entry = &entries[len(entries)-1]
	}

	if err := s.store.SaveCart(token, entries, s.ttl); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update adjusts a single entry. An absent item id is a no-op; a decrease
// that reaches zero removes the entry so quantities never sit at or below
// zero.
func (s *cartService) Update(token string, itemID uint, action string) error {
	entries, err := s.store.GetCart(token)
	if err != nil {
		return err
	}

	idx := -1
	for i := range entries {
		if entries[i].MenuItemID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	switch action {
	case CartActionIncrease:
		entries[idx].Quantity++
	case CartActionDecrease:
		entries[idx].Quantity--
		if entries[idx].Quantity <= 0 {
			entries = append(entries[:idx], entries[idx+1:]...)
		}
	case CartActionRemove:
		entries = append(entries[:idx], entries[idx+1:]...)
	default:
		return nil
	}

	return s.store.SaveCart(token, entries, s.ttl)
}

func (s *cartService) Snapshot(token string) ([]models.CartEntry, error) {
	return s.store.GetCart(token)
}

func (s *cartService) Totals(entries []models.CartEntry) models.CartTotals {
	return cartTotals(entries, s.deliveryFee)
}

func (s *cartService) Count(entries []models.CartEntry) int {
	count := 0
	for _, entry := range entries {
		count += entry.Quantity
	}
	return count
}

func (s *cartService) Clear(token string) error {
	return s.store.ClearCart(token)
}

// cartTotals computes subtotal, fee and total from a snapshot. The flat
// delivery fee applies only to non-empty carts.
func cartTotals(entries []models.CartEntry, deliveryFee float64) models.CartTotals {
	totals := models.CartTotals{}
	for _, entry := range entries {
		totals.Subtotal += entry.UnitPrice * float64(entry.Quantity)
	}
	totals.Subtotal = roundCents(totals.Subtotal)
	if len(entries) > 0 {
		totals.DeliveryFee = deliveryFee
	}
	totals.Total = roundCents(totals.Subtotal + totals.DeliveryFee)
	return totals
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
