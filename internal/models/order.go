package models

import (
	"time"
)

const (
	OrderPending        = "pending"
	OrderConfirmed      = "confirmed"
	OrderPreparing      = "preparing"
	OrderOutForDelivery = "out_for_delivery"
	OrderDelivered      = "delivered"
	OrderCancelled      = "cancelled"
)

const (
	PaymentRazorpay = "razorpay"
	PaymentCOD      = "cod"
)

const (
	FulfillmentDelivery = "delivery"
	FulfillmentPickup   = "pickup"
)

type Order struct {
	ID                string      `json:"id"`
	UserID            int         `json:"user_id"`
	CustomerName      string      `json:"customer_name"`
	CustomerPhone     string      `json:"customer_phone"`
	CustomerEmail     string      `json:"customer_email"`
	DeliveryAddress   string      `json:"delivery_address"`
	Notes             string      `json:"notes,omitempty"`
	Latitude          *float64    `json:"latitude,omitempty"`
	Longitude         *float64    `json:"longitude,omitempty"`
	DistanceKm        *float64    `json:"distance_km,omitempty"`
	Fulfillment       string      `json:"fulfillment"`
	TotalAmount       float64     `json:"total_amount"`
	Status            string      `json:"status"`
	PaymentMethod     string      `json:"payment_method"`
	PaymentStatus     string      `json:"payment_status"`
	RazorpayOrderID   string      `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string      `json:"razorpay_payment_id,omitempty"`
	AssignedTo        *int        `json:"assigned_to,omitempty"`
	Items             []OrderItem `json:"items,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         *time.Time  `json:"updated_at,omitempty"`
}

type OrderItem struct {
	ID               int     `json:"id"`
	OrderID          string  `json:"order_id"`
	ProductID        string  `json:"product_id"`
	ProductName      string  `json:"product_name"`
	VariationDetails string  `json:"variation_details,omitempty"`
	Quantity         int     `json:"quantity"`
	UnitPrice        float64 `json:"unit_price"`
	Subtotal         float64 `json:"subtotal"`
}

type CheckoutRequest struct {
	CustomerName    string   `json:"customer_name"`
	CustomerPhone   string   `json:"customer_phone"`
	CustomerEmail   string   `json:"customer_email"`
	DeliveryAddress string   `json:"delivery_address"`
	Notes           string   `json:"notes"`
	Fulfillment     string   `json:"fulfillment"`
	PaymentMethod   string   `json:"payment_method"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type AssignOrderRequest struct {
	DeliveryPersonID int `json:"delivery_person_id"`
}

// OrderEvent is pushed over the dashboard websocket whenever an order is
// created or changes status.
type OrderEvent struct {
	OrderID string  `json:"order_id"`
	UserID  int     `json:"user_id"`
	Status  string  `json:"status"`
	Total   float64 `json:"total,omitempty"`
}
