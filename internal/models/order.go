package models

import "time"

type Order struct {
	ID                   uint        `json:"id" gorm:"primaryKey"`
	CustomerName         string      `json:"customer_name" gorm:"not null"`
	CustomerEmail        string      `json:"customer_email" gorm:"not null;index"`
	CustomerPhone        string      `json:"customer_phone"`
	DeliveryAddress      string      `json:"delivery_address" gorm:"not null"`
	DeliveryInstructions string      `json:"delivery_instructions" gorm:"type:text"`
	Subtotal             float64     `json:"subtotal" gorm:"not null"`
	DeliveryFee          float64     `json:"delivery_fee" gorm:"not null"`
	Total                float64     `json:"total" gorm:"not null"`
	Status               string      `json:"status" gorm:"default:'pending';index"`
	Items                []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// OrderStatuses lists every recognized status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderPending,
	OrderConfirmed,
	OrderPreparing,
	OrderOutForDelivery,
	OrderDelivered,
	OrderCancelled,
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}
