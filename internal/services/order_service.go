package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Vivek212004/bake-cart-manager/internal/delivery"
	"github.com/Vivek212004/bake-cart-manager/internal/models"
	"github.com/Vivek212004/bake-cart-manager/internal/repositories"
)

type OrderService struct {
	OrderRepo   *repositories.OrderRepository
	CartRepo    *repositories.CartRepository
	ProductRepo *repositories.ProductRepository
	Calculator  delivery.Calculator
	Razorpay    *RazorpayService
	Notifier    *NotificationService

	// Events receives order lifecycle events for the dashboard websocket.
	// Sends are non-blocking; a missing or slow consumer drops events.
	Events chan<- models.OrderEvent
}

// CheckoutResult is what the checkout endpoint returns: the stored order and,
// for online payment, the gateway order the client widget needs.
type CheckoutResult struct {
	Order         models.Order   `json:"order"`
	RazorpayOrder *RazorpayOrder `json:"razorpay_order,omitempty"`
	RazorpayKeyID string         `json:"razorpay_key_id,omitempty"`
}

// CheckDelivery runs the delivery-radius gate for a raw coordinate. Callers
// that could not obtain a location must not call this at all.
func (s *OrderService) CheckDelivery(point models.GeoPoint) models.DeliveryCheck {
	return s.Calculator.Check(point)
}

func (s *OrderService) Checkout(ctx context.Context, userID int, cartOwner string, req models.CheckoutRequest) (CheckoutResult, error) {
	items, err := s.CartRepo.GetItems(ctx, cartOwner)
	if err != nil {
		return CheckoutResult{}, err
	}
	if len(items) == 0 {
		return CheckoutResult{}, models.ErrEmptyCart
	}

	if req.PaymentMethod != models.PaymentRazorpay && req.PaymentMethod != models.PaymentCOD {
		return CheckoutResult{}, models.ErrUnsupportedPaymentMethod
	}
	if req.Fulfillment == "" {
		req.Fulfillment = models.FulfillmentDelivery
	}

	order := models.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		Fulfillment:     req.Fulfillment,
		Status:          models.OrderPending,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   "pending",
	}

	if req.Fulfillment == models.FulfillmentDelivery {
		if req.Latitude == nil || req.Longitude == nil {
			return CheckoutResult{}, models.ErrLocationRequired
		}
		check := s.Calculator.Check(models.GeoPoint{Latitude: *req.Latitude, Longitude: *req.Longitude})
		if !check.WithinRadius {
			return CheckoutResult{}, fmt.Errorf("%w (%.1f km, limit %.0f km)",
				models.ErrOutsideDeliveryRadius, check.DistanceKm, s.Calculator.MaxRadiusKm())
		}
		order.Latitude = req.Latitude
		order.Longitude = req.Longitude
		order.DistanceKm = &check.DistanceKm
	}

	// Cart prices were resolved server-side when the lines were added; here
	// the products are re-checked so stale carts cannot order removed or
	// hidden items.
	for _, item := range items {
		product, err := s.ProductRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return CheckoutResult{}, err
		}
		if !product.IsAvailable {
			return CheckoutResult{}, fmt.Errorf("%w: %s", models.ErrProductUnavailable, product.Name)
		}

		subtotal := item.UnitPrice * float64(item.Quantity)
		order.TotalAmount += subtotal
		order.Items = append(order.Items, models.OrderItem{
			ProductID:        item.ProductID,
			ProductName:      item.Name,
			VariationDetails: item.Variation,
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice,
			Subtotal:         subtotal,
		})
	}

	order, err = s.OrderRepo.CreateOrder(ctx, order)
	if err != nil {
		return CheckoutResult{}, err
	}

	if err := s.CartRepo.Clear(ctx, cartOwner); err != nil {
		return CheckoutResult{}, err
	}

	s.publish(order)

	result := CheckoutResult{Order: order}
	if req.PaymentMethod == models.PaymentRazorpay {
		rzOrder, err := s.Razorpay.CreateOrder(ctx, order.TotalAmount, order.ID)
		if err != nil {
			return CheckoutResult{}, err
		}
		if err := s.OrderRepo.SetRazorpayOrderID(ctx, order.ID, rzOrder.ID); err != nil {
			return CheckoutResult{}, err
		}
		order.RazorpayOrderID = rzOrder.ID
		result.Order = order
		result.RazorpayOrder = &rzOrder
		result.RazorpayKeyID = s.Razorpay.KeyID
	}
	return result, nil
}

type VerifyPaymentRequest struct {
	OrderID           string `json:"order_id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// VerifyPayment checks the gateway signature and, when valid, marks the order
// paid and confirmed. An invalid signature leaves the order untouched.
func (s *OrderService) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) (models.Order, error) {
	order, err := s.OrderRepo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return models.Order{}, err
	}
	if order.RazorpayOrderID == "" || order.RazorpayOrderID != req.RazorpayOrderID {
		return models.Order{}, models.ErrInvalidPaymentSignature
	}

	if !s.Razorpay.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		return models.Order{}, models.ErrInvalidPaymentSignature
	}

	if err := s.OrderRepo.MarkPaid(ctx, req.OrderID, req.RazorpayPaymentID); err != nil {
		return models.Order{}, err
	}

	order, err = s.OrderRepo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return models.Order{}, err
	}
	s.publish(order)
	s.notify(ctx, order)
	return order, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id string) (models.Order, error) {
	return s.OrderRepo.GetOrderByID(ctx, id)
}

func (s *OrderService) GetOrdersByUserID(ctx context.Context, userID int) ([]models.Order, error) {
	return s.OrderRepo.GetOrdersByUserID(ctx, userID)
}

func (s *OrderService) GetAllOrders(ctx context.Context, status string) ([]models.Order, error) {
	return s.OrderRepo.GetAllOrders(ctx, status)
}

func (s *OrderService) GetAssignedOrders(ctx context.Context, deliveryPersonID int) ([]models.Order, error) {
	return s.OrderRepo.GetAssignedOrders(ctx, deliveryPersonID)
}

// UpdateStatus moves an order along the lifecycle on behalf of an admin.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, newStatus string) (models.Order, error) {
	order, err := s.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}
	if !CanTransition(order.Status, newStatus) {
		return models.Order{}, models.ErrInvalidStatusTransition
	}
	return s.applyStatus(ctx, order, newStatus)
}

// MarkDelivered is the one transition a delivery person may perform, and only
// on an order assigned to them.
func (s *OrderService) MarkDelivered(ctx context.Context, orderID string, deliveryPersonID int) (models.Order, error) {
	order, err := s.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}
	if order.AssignedTo == nil || *order.AssignedTo != deliveryPersonID {
		return models.Order{}, models.ErrOrderNotAssigned
	}
	if !CanTransition(order.Status, models.OrderDelivered) {
		return models.Order{}, models.ErrInvalidStatusTransition
	}
	return s.applyStatus(ctx, order, models.OrderDelivered)
}

// CancelOrder lets the customer back out while the order is still pending.
func (s *OrderService) CancelOrder(ctx context.Context, orderID string, userID int) (models.Order, error) {
	order, err := s.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}
	if order.UserID != userID {
		return models.Order{}, models.ErrOrderNotFound
	}
	if order.Status != models.OrderPending {
		return models.Order{}, models.ErrInvalidStatusTransition
	}
	return s.applyStatus(ctx, order, models.OrderCancelled)
}

func (s *OrderService) AssignOrder(ctx context.Context, orderID string, deliveryPersonID int) error {
	return s.OrderRepo.AssignOrder(ctx, orderID, deliveryPersonID)
}

func (s *OrderService) applyStatus(ctx context.Context, order models.Order, newStatus string) (models.Order, error) {
	if err := s.OrderRepo.UpdateOrderStatus(ctx, order.ID, newStatus); err != nil {
		return models.Order{}, err
	}
	order.Status = newStatus
	s.publish(order)
	s.notify(ctx, order)
	return order, nil
}

func (s *OrderService) publish(order models.Order) {
	if s.Events == nil {
		return
	}
	select {
	case s.Events <- models.OrderEvent{OrderID: order.ID, UserID: order.UserID, Status: order.Status, Total: order.TotalAmount}:
	default:
	}
}

func (s *OrderService) notify(ctx context.Context, order models.Order) {
	if s.Notifier != nil {
		s.Notifier.NotifyOrderStatus(ctx, order)
	}
}

var statusTransitions = map[string][]string{
	models.OrderPending:        {models.OrderConfirmed, models.OrderCancelled},
	models.OrderConfirmed:      {models.OrderPreparing, models.OrderCancelled},
	models.OrderPreparing:      {models.OrderOutForDelivery},
	models.OrderOutForDelivery: {models.OrderDelivered},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
