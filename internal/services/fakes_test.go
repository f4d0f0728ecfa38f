package services

import (
	"sync"
	"time"

	"food_ordering/internal/models"

	"gorm.io/gorm"
)

type fakeCartStore struct {
	carts map[string][]models.CartEntry
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[string][]models.CartEntry)}
}

func (s *fakeCartStore) GetCart(token string) ([]models.CartEntry, error) {
	entries := make([]models.CartEntry, len(s.carts[token]))
	copy(entries, s.carts[token])
	return entries, nil
}

func (s *fakeCartStore) SaveCart(token string, entries []models.CartEntry, ttl time.Duration) error {
	s.carts[token] = entries
	return nil
}

func (s *fakeCartStore) ClearCart(token string) error {
	delete(s.carts, token)
	return nil
}

type fakeMenuRepo struct {
	items map[uint]models.MenuItem
}

func newFakeMenuRepo(items ...models.MenuItem) *fakeMenuRepo {
	repo := &fakeMenuRepo{items: make(map[uint]models.MenuItem)}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (r *fakeMenuRepo) Create(item *models.MenuItem) error {
	if item.ID == 0 {
		item.ID = uint(len(r.items) + 1)
	}
	r.items[item.ID] = *item
	return nil
}

func (r *fakeMenuRepo) GetByID(id uint) (*models.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (r *fakeMenuRepo) GetAll() ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	return items, nil
}

func (r *fakeMenuRepo) GetAvailable() ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, item := range r.items {
		if item.IsAvailable {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeMenuRepo) GetAvailableByCategory(categoryID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, item := range r.items {
		if item.IsAvailable && item.CategoryID == categoryID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeMenuRepo) GetPopular(limit int) ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, item := range r.items {
		if item.IsAvailable && item.IsPopular && len(items) < limit {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeMenuRepo) Update(item *models.MenuItem) error {
	r.items[item.ID] = *item
	return nil
}

func (r *fakeMenuRepo) Delete(id uint) error {
	delete(r.items, id)
	return nil
}

type fakeOrderRepo struct {
	orders map[uint]*models.Order
	items  map[uint][]models.OrderItem
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[uint]*models.Order),
		items:  make(map[uint][]models.OrderItem),
	}
}

func (r *fakeOrderRepo) CreateWithItems(order *models.Order, items []models.OrderItem) error {
	r.nextID++
	order.ID = r.nextID
	order.CreatedAt = time.Now()

	for i := range items {
		items[i].OrderID = order.ID
	}
	order.Items = items

	stored := *order
	r.orders[order.ID] = &stored
	r.items[order.ID] = items
	return nil
}

func (r *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *order
	copied.Items = r.items[id]
	return &copied, nil
}

func (r *fakeOrderRepo) GetByIDAndEmail(id uint, email string) (*models.Order, error) {
	order, err := r.GetByID(id)
	if err != nil || order.CustomerEmail != email {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (r *fakeOrderRepo) GetAll() ([]models.Order, error) {
	orders := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *fakeOrderRepo) GetRecent(limit int) ([]models.Order, error) {
	orders, _ := r.GetAll()
	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func (r *fakeOrderRepo) UpdateStatus(id uint, status string) error {
	order, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	return nil
}

func (r *fakeOrderRepo) Delete(id uint) error {
	delete(r.orders, id)
	delete(r.items, id)
	return nil
}

func (r *fakeOrderRepo) CountByStatus(status string) (int64, error) {
	var count int64
	for _, order := range r.orders {
		if order.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeOrderRepo) TodayRevenue() (float64, error) {
	var revenue float64
	for _, order := range r.orders {
		revenue += order.Total
	}
	return revenue, nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeSender struct {
	mu       sync.Mutex
	enabled  bool
	sent     []sentMail
	delivery chan sentMail
}

func newFakeSender(enabled bool) *fakeSender {
	return &fakeSender{enabled: enabled, delivery: make(chan sentMail, 16)}
}

func (s *fakeSender) Enabled() bool {
	return s.enabled
}

func (s *fakeSender) Send(to, subject, body string) error {
	s.mu.Lock()
	mail := sentMail{to: to, subject: subject, body: body}
	s.sent = append(s.sent, mail)
	s.mu.Unlock()
	s.delivery <- mail
	return nil
}

func (s *fakeSender) sentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

// waitForMail blocks until one dispatch lands or the timeout expires.
func (s *fakeSender) waitForMail(timeout time.Duration) (sentMail, bool) {
	select {
	case mail := <-s.delivery:
		return mail, true
	case <-time.After(timeout):
		return sentMail{}, false
	}
}
