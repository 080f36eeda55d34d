package services

import (
	"context"
	"log"

	"firebase.google.com/go/messaging"

	"github.com/Vivek212004/bake-cart-manager/internal/models"
	"github.com/Vivek212004/bake-cart-manager/internal/repositories"
)

// NotificationService pushes order updates to the customer's device over FCM.
// Pushes are best effort: failures are logged and never fail the request that
// triggered them. A nil Client disables pushes entirely.
type NotificationService struct {
	Client   *messaging.Client
	UserRepo *repositories.UserRepository
	ErrorLog *log.Logger
}

var statusMessages = map[string]string{
	models.OrderConfirmed:      "Your order has been confirmed!",
	models.OrderPreparing:      "Your order is being prepared.",
	models.OrderOutForDelivery: "Your order is out for delivery.",
	models.OrderDelivered:      "Your order has been delivered. Enjoy!",
	models.OrderCancelled:      "Your order has been cancelled.",
}

func (s *NotificationService) NotifyOrderStatus(ctx context.Context, order models.Order) {
	if s.Client == nil {
		return
	}

	user, err := s.UserRepo.GetUserByID(ctx, order.UserID)
	if err != nil || user.DeviceToken == "" {
		return
	}

	body, ok := statusMessages[order.Status]
	if !ok {
		return
	}

	message := &messaging.Message{
		Token: user.DeviceToken,
		Notification: &messaging.Notification{
			Title: "Order update",
			Body:  body,
		},
		Data: map[string]string{
			"order_id": order.ID,
			"status":   order.Status,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": "10"},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: "Order update",
						Body:  body,
					},
					Sound: "default",
				},
			},
		},
	}

	if _, err := s.Client.Send(ctx, message); err != nil && s.ErrorLog != nil {
		s.ErrorLog.Printf("fcm push for order %s: %v", order.ID, err)
	}
}
