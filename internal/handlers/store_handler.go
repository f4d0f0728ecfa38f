package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"food_ordering/internal/models"
	"food_ordering/internal/redis"
	"food_ordering/internal/services"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	catalog services.CatalogService
	cart    services.CartService
	orders  services.OrderService
	session *redis.Client
}

func NewStoreHandler(
	catalog services.CatalogService,
	cart services.CartService,
	orders services.OrderService,
	session *redis.Client,
) *StoreHandler {
	return &StoreHandler{
		catalog: catalog,
		cart:    cart,
		orders:  orders,
		session: session,
	}
}

func (h *StoreHandler) render(c *gin.Context, name string, data gin.H) {
	entries, err := h.cart.Snapshot(sessionToken(c))
	if err != nil {
		log.Printf("Failed to load cart for render: %v", err)
	}
	data["CartCount"] = h.cart.Count(entries)
	data["Flashes"] = popFlashes(h.session, c)
	c.HTML(http.StatusOK, name, data)
}

func (h *StoreHandler) Index(c *gin.Context) {
	categories, err := h.catalog.GetCategories()
	if err != nil {
		log.Printf("Failed to load categories: %v", err)
	}

	popular, err := h.catalog.GetPopularItems(6)
	if err != nil {
		log.Printf("Failed to load popular items: %v", err)
	}

	h.render(c, "index.html", gin.H{
		"Categories":   categories,
		"PopularItems": popular,
	})
}

func (h *StoreHandler) Menu(c *gin.Context) {
	categories, err := h.catalog.GetCategories()
	if err != nil {
		log.Printf("Failed to load categories: %v", err)
	}

	var categoryID uint
	var current *models.Category
	if raw := c.Query("category"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			categoryID = uint(id)
			if category, err := h.catalog.GetCategory(categoryID); err == nil {
				current = category
			}
		}
	}

	items, err := h.catalog.GetMenu(categoryID)
	if err != nil {
		log.Printf("Failed to load menu: %v", err)
	}

	h.render(c, "menu.html", gin.H{
		"Categories":      categories,
		"Items":           items,
		"CurrentCategory": current,
	})
}

func (h *StoreHandler) Cart(c *gin.Context) {
	entries, err := h.cart.Snapshot(sessionToken(c))
	if err != nil {
		log.Printf("Failed to load cart: %v", err)
	}
	totals := h.cart.Totals(entries)

	h.render(c, "cart.html", gin.H{
		"Entries": entries,
		"Totals":  totals,
	})
}

func (h *StoreHandler) AddToCart(c *gin.Context) {
	itemID, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "menu item not found")
		return
	}

	entry, err := h.cart.Add(sessionToken(c), itemID)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			c.String(http.StatusNotFound, "menu item not found")
			return
		}
		log.Printf("Failed to add item %d to cart: %v", itemID, err)
		addFlash(h.session, c, "error", "Could not add item to cart.")
		c.Redirect(http.StatusFound, "/menu")
		return
	}

	addFlash(h.session, c, "success", entry.Name+" added to cart!")

	if referrer := c.Request.Referer(); referrer != "" {
		c.Redirect(http.StatusFound, referrer)
		return
	}
	c.Redirect(http.StatusFound, "/menu")
}

func (h *StoreHandler) UpdateCart(c *gin.Context) {
	itemID, ok := parseID(c, "id")
	if ok {
		action := c.PostForm("action")
		if err := h.cart.Update(sessionToken(c), itemID, action); err != nil {
			log.Printf("Failed to update cart item %d: %v", itemID, err)
		}
	}
	c.Redirect(http.StatusFound, "/cart")
}

func (h *StoreHandler) CheckoutForm(c *gin.Context) {
	entries, err := h.cart.Snapshot(sessionToken(c))
	if err != nil {
		log.Printf("Failed to load cart: %v", err)
	}
	if len(entries) == 0 {
		addFlash(h.session, c, "warning", "Your cart is empty!")
		c.Redirect(http.StatusFound, "/menu")
		return
	}

	h.render(c, "checkout.html", gin.H{
		"Entries": entries,
		"Totals":  h.cart.Totals(entries),
	})
}

func (h *StoreHandler) Checkout(c *gin.Context) {
	info := services.CustomerInfo{
		Name:         c.PostForm("name"),
		Email:        c.PostForm("email"),
		Phone:        c.PostForm("phone"),
		Address:      c.PostForm("address"),
		Instructions: c.PostForm("instructions"),
	}

	if info.Name == "" || info.Email == "" || info.Phone == "" || info.Address == "" {
		addFlash(h.session, c, "error", "Please fill in all required fields.")
		c.Redirect(http.StatusFound, "/checkout")
		return
	}

	order, err := h.orders.PlaceOrder(sessionToken(c), info)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			addFlash(h.session, c, "warning", "Your cart is empty!")
			c.Redirect(http.StatusFound, "/menu")
			return
		}
		log.Printf("Failed to place order: %v", err)
		addFlash(h.session, c, "error", "Something went wrong placing your order. Please try again.")
		c.Redirect(http.StatusFound, "/checkout")
		return
	}

	c.Redirect(http.StatusFound, "/order-confirmation/"+strconv.FormatUint(uint64(order.ID), 10))
}

func (h *StoreHandler) OrderConfirmation(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "order not found")
		return
	}

	order, err := h.orders.GetOrder(orderID)
	if err != nil {
		c.String(http.StatusNotFound, "order not found")
		return
	}

	h.render(c, "order_confirmation.html", gin.H{"Order": order})
}

func (h *StoreHandler) TrackOrderForm(c *gin.Context) {
	h.render(c, "track_order.html", gin.H{})
}

func (h *StoreHandler) TrackOrder(c *gin.Context) {
	var order *models.Order

	orderID, err := strconv.ParseUint(c.PostForm("order_id"), 10, 32)
	email := c.PostForm("email")
	if err == nil && email != "" {
		order, err = h.orders.TrackOrder(uint(orderID), email)
	} else {
		err = services.ErrOrderNotFound
	}
	if err != nil {
		addFlash(h.session, c, "error", "Order not found. Please check your order ID and email.")
		order = nil
	}

	h.render(c, "track_order.html", gin.H{"Order": order})
}

func (h *StoreHandler) OrderHistory(c *gin.Context) {
	orders, err := h.orders.GetRecentOrders(20)
	if err != nil {
		log.Printf("Failed to load order history: %v", err)
	}
	h.render(c, "order_history.html", gin.H{"Orders": orders})
}
