package services

import (
	"fmt"
	"log"

	"food_ordering/internal/models"
)

// MailSender is the outbound transport. pkg/mailer implements it.
type MailSender interface {
	Enabled() bool
	Send(to, subject, body string) error
}

// NotificationService emails the customer when an order changes status.
// Dispatch is fire-and-forget: delivery runs on its own goroutine, failures
// are logged and never reach the caller.
type NotificationService interface {
	NotifyStatusChange(order *models.Order, status string)
}

type notificationService struct {
	sender MailSender
}

func NewNotificationService(sender MailSender) NotificationService {
	return &notificationService{sender: sender}
}

func (s *notificationService) NotifyStatusChange(order *models.Order, status string) {
	if !s.sender.Enabled() {
		log.Printf("Mail disabled, skipping notification for order #%d (%s)", order.ID, status)
		return
	}

	subject, body := statusMessage(order, status)

	go func() {
		if err := s.sender.Send(order.CustomerEmail, subject, body); err != nil {
			log.Printf("Failed to send status notification for order #%d: %v", order.ID, err)
		}
	}()
}

// statusMessage builds the subject/body pair for a status. Output depends
// only on the order and status, so resends and out-of-order delivery are
// harmless.
func statusMessage(order *models.Order, status string) (string, string) {
	greeting := fmt.Sprintf("Hi %s,\n\n", order.CustomerName)
	footer := fmt.Sprintf("\n\nOrder total: $%.2f\nDelivery address: %s\n\nThank you for ordering with us!",
		order.Total, order.DeliveryAddress)

	switch models.OrderStatus(status) {
	case models.OrderPending:
		return fmt.Sprintf("Order #%d received", order.ID),
			greeting + fmt.Sprintf("We have received your order #%d and will confirm it shortly.", order.ID) + footer
	case models.OrderConfirmed:
		return fmt.Sprintf("Order #%d confirmed", order.ID),
			greeting + fmt.Sprintf("Good news! Your order #%d has been confirmed and will be prepared soon.", order.ID) + footer
	case models.OrderPreparing:
		return fmt.Sprintf("Order #%d is being prepared", order.ID),
			greeting + fmt.Sprintf("Our kitchen is now preparing your order #%d.", order.ID) + footer
	case models.OrderOutForDelivery:
		return fmt.Sprintf("Order #%d is out for delivery", order.ID),
			greeting + fmt.Sprintf("Your order #%d is on its way to you.", order.ID) + footer
	case models.OrderDelivered:
		return fmt.Sprintf("Order #%d delivered", order.ID),
			greeting + fmt.Sprintf("Your order #%d has been delivered. Enjoy your meal!", order.ID) + footer
	case models.OrderCancelled:
		return fmt.Sprintf("Order #%d cancelled", order.ID),
			greeting + fmt.Sprintf("Your order #%d has been cancelled. If you did not request this, please contact us.", order.ID) + footer
	default:
		return fmt.Sprintf("Order #%d update", order.ID),
			greeting + fmt.Sprintf("Your order #%d status is now: %s.", order.ID, status) + footer
	}
}
