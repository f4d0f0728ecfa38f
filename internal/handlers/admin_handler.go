package handlers

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"food_ordering/internal/config"
	"food_ordering/internal/models"
	"food_ordering/internal/redis"
	"food_ordering/internal/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AdminHandler struct {
	catalog      services.CatalogService
	orders       services.OrderService
	session      *redis.Client
	username     string
	passwordHash []byte
	sessionTTL   time.Duration
}

func NewAdminHandler(
	catalog services.CatalogService,
	orders services.OrderService,
	session *redis.Client,
	cfg *config.Config,
) *AdminHandler {
	hash := []byte(cfg.AdminPasswordHash)
	if len(hash) == 0 {
		generated, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Failed to hash admin password: %v", err)
		}
		hash = generated
	}

	return &AdminHandler{
		catalog:      catalog,
		orders:       orders,
		session:      session,
		username:     cfg.AdminUsername,
		passwordHash: hash,
		sessionTTL:   time.Duration(cfg.SessionTTL) * time.Second,
	}
}

func (h *AdminHandler) render(c *gin.Context, name string, data gin.H) {
	data["Flashes"] = popFlashes(h.session, c)
	c.HTML(http.StatusOK, name, data)
}

// checkCredentials compares both factors before deciding, with a
// constant-time username check and bcrypt on the password.
func (h *AdminHandler) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(h.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(password)) == nil
	return userOK && passOK
}

func (h *AdminHandler) LoginForm(c *gin.Context) {
	if ok, _ := h.session.IsAdminSession(sessionToken(c)); ok {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	h.render(c, "admin_login.html", gin.H{})
}

func (h *AdminHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if !h.checkCredentials(username, password) {
		addFlash(h.session, c, "error", "Invalid username or password.")
		h.render(c, "admin_login.html", gin.H{})
		return
	}

	if err := h.session.SetAdminSession(sessionToken(c), h.sessionTTL); err != nil {
		log.Printf("Failed to store admin session: %v", err)
		addFlash(h.session, c, "error", "Login failed, please try again.")
		h.render(c, "admin_login.html", gin.H{})
		return
	}

	addFlash(h.session, c, "success", "Welcome back, Admin!")
	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) Logout(c *gin.Context) {
	if err := h.session.ClearAdminSession(sessionToken(c)); err != nil {
		log.Printf("Failed to clear admin session: %v", err)
	}
	addFlash(h.session, c, "info", "Logged out successfully.")
	c.Redirect(http.StatusFound, "/")
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	orders, err := h.orders.GetAllOrders()
	if err != nil {
		log.Printf("Failed to load orders: %v", err)
	}

	items, err := h.catalog.GetAllMenuItems()
	if err != nil {
		log.Printf("Failed to load menu items: %v", err)
	}

	categories, err := h.catalog.GetCategories()
	if err != nil {
		log.Printf("Failed to load categories: %v", err)
	}

	stats, err := h.orders.GetDashboardStats()
	if err != nil {
		log.Printf("Failed to load dashboard stats: %v", err)
		stats = &services.DashboardStats{}
	}

	h.render(c, "admin.html", gin.H{
		"Orders":     orders,
		"Items":      items,
		"Categories": categories,
		"Stats":      stats,
		"Statuses":   models.OrderStatuses,
	})
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "order not found")
		return
	}

	status := c.PostForm("status")
	order, err := h.orders.UpdateStatus(orderID, status)
	switch {
	case errors.Is(err, services.ErrInvalidStatus):
		addFlash(h.session, c, "error", "Unrecognized order status.")
	case errors.Is(err, services.ErrOrderNotFound):
		addFlash(h.session, c, "error", fmt.Sprintf("Order #%d not found.", orderID))
	case err != nil:
		log.Printf("Failed to update order %d status: %v", orderID, err)
		addFlash(h.session, c, "error", "Could not update order status.")
	default:
		addFlash(h.session, c, "success", fmt.Sprintf("Order #%d status updated to %s", order.ID, order.Status))
	}

	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) DeleteOrder(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "order not found")
		return
	}

	if err := h.orders.DeleteOrder(orderID); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			addFlash(h.session, c, "error", fmt.Sprintf("Order #%d not found.", orderID))
		} else {
			log.Printf("Failed to delete order %d: %v", orderID, err)
			addFlash(h.session, c, "error", "Could not delete order.")
		}
	} else {
		addFlash(h.session, c, "success", fmt.Sprintf("Order #%d deleted.", orderID))
	}

	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) AddMenuItem(c *gin.Context) {
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price <= 0 {
		addFlash(h.session, c, "error", "Price must be a positive number.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
	if err != nil {
		addFlash(h.session, c, "error", "Please pick a category.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	item := &models.MenuItem{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		CategoryID:  uint(categoryID),
		ImageURL:    c.PostForm("image_url"),
		IsAvailable: true,
		IsPopular:   c.PostForm("is_popular") != "",
	}

	if err := h.catalog.CreateMenuItem(item); err != nil {
		log.Printf("Failed to create menu item: %v", err)
		addFlash(h.session, c, "error", "Could not add menu item.")
	} else {
		addFlash(h.session, c, "success", item.Name+" added to menu!")
	}

	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) EditMenuItem(c *gin.Context) {
	itemID, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "menu item not found")
		return
	}

	item, err := h.catalog.GetMenuItem(itemID)
	if err != nil {
		addFlash(h.session, c, "error", "Menu item not found.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	if name := c.PostForm("name"); name != "" {
		item.Name = name
	}
	if description := c.PostForm("description"); description != "" {
		item.Description = description
	}
	if raw := c.PostForm("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || price <= 0 {
			addFlash(h.session, c, "error", "Price must be a positive number.")
			c.Redirect(http.StatusFound, "/admin")
			return
		}
		item.Price = price
	}
	if raw := c.PostForm("category_id"); raw != "" {
		if categoryID, err := strconv.ParseUint(raw, 10, 32); err == nil {
			item.CategoryID = uint(categoryID)
		}
	}
	if imageURL := c.PostForm("image_url"); imageURL != "" {
		item.ImageURL = imageURL
	}

	if err := h.catalog.UpdateMenuItem(item); err != nil {
		log.Printf("Failed to update menu item %d: %v", itemID, err)
		addFlash(h.session, c, "error", "Could not update menu item.")
	} else {
		addFlash(h.session, c, "success", item.Name+" updated!")
	}

	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) DeleteMenuItem(c *gin.Context) {
	itemID, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "menu item not found")
		return
	}

	item, err := h.catalog.GetMenuItem(itemID)
	if err != nil {
		addFlash(h.session, c, "error", "Menu item not found.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	if err := h.catalog.DeleteMenuItem(itemID); err != nil {
		log.Printf("Failed to delete menu item %d: %v", itemID, err)
		addFlash(h.session, c, "error", "Could not delete menu item.")
	} else {
		addFlash(h.session, c, "success", item.Name+" removed from menu!")
	}

	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) ToggleMenuItem(c *gin.Context) {
	itemID, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "menu item not found")
		return
	}

	item, err := h.catalog.ToggleAvailability(itemID)
	if err != nil {
		addFlash(h.session, c, "error", "Menu item not found.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	state := "available"
	if !item.IsAvailable {
		state = "unavailable"
	}
	addFlash(h.session, c, "success", fmt.Sprintf("%s is now %s!", item.Name, state))
	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) AddCategory(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		addFlash(h.session, c, "error", "Category name is required.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	category := &models.Category{
		Name: name,
		Icon: c.PostForm("icon"),
	}

	if err := h.catalog.CreateCategory(category); err != nil {
		log.Printf("Failed to create category: %v", err)
		addFlash(h.session, c, "error", "Could not add category.")
	} else {
		addFlash(h.session, c, "success", "Category "+category.Name+" added!")
	}

	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	categoryID, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "category not found")
		return
	}

	err := h.catalog.DeleteCategory(categoryID)
	switch {
	case errors.Is(err, services.ErrCategoryInUse):
		addFlash(h.session, c, "error", "Category still has menu items and cannot be deleted.")
	case errors.Is(err, services.ErrCategoryNotFound):
		addFlash(h.session, c, "error", "Category not found.")
	case err != nil:
		log.Printf("Failed to delete category %d: %v", categoryID, err)
		addFlash(h.session, c, "error", "Could not delete category.")
	default:
		addFlash(h.session, c, "success", "Category deleted.")
	}

	c.Redirect(http.StatusFound, "/admin")
}
