package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/Vivek212004/bake-cart-manager/internal/models"
)

type OrderRepository struct {
	DB *sql.DB
}

const orderColumns = `
	id, user_id, customer_name, customer_phone, customer_email, delivery_address,
	notes, latitude, longitude, distance_km, fulfillment, total_amount, status,
	payment_method, payment_status, razorpay_order_id, razorpay_payment_id,
	assigned_to, created_at, updated_at
`

func scanOrder(row interface{ Scan(...any) error }) (models.Order, error) {
	var o models.Order
	var razorpayOrderID, razorpayPaymentID sql.NullString

	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.CustomerName,
		&o.CustomerPhone,
		&o.CustomerEmail,
		&o.DeliveryAddress,
		&o.Notes,
		&o.Latitude,
		&o.Longitude,
		&o.DistanceKm,
		&o.Fulfillment,
		&o.TotalAmount,
		&o.Status,
		&o.PaymentMethod,
		&o.PaymentStatus,
		&razorpayOrderID,
		&razorpayPaymentID,
		&o.AssignedTo,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return models.Order{}, err
	}
	o.RazorpayOrderID = razorpayOrderID.String
	o.RazorpayPaymentID = razorpayPaymentID.String
	return o, nil
}

// CreateOrder writes the order and all its line items in one transaction.
func (r *OrderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Order{}, err
	}

	order.CreatedAt = time.Now()

	query := `
		INSERT INTO orders (id, user_id, customer_name, customer_phone, customer_email,
			delivery_address, notes, latitude, longitude, distance_km, fulfillment,
			total_amount, status, payment_method, payment_status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		order.ID, order.UserID, order.CustomerName, order.CustomerPhone, order.CustomerEmail,
		order.DeliveryAddress, order.Notes, order.Latitude, order.Longitude, order.DistanceKm,
		order.Fulfillment, order.TotalAmount, order.Status, order.PaymentMethod,
		order.PaymentStatus, order.CreatedAt,
	)
	if err != nil {
		tx.Rollback()
		return models.Order{}, err
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, product_name, variation_details, quantity, unit_price, subtotal)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		_, err = tx.ExecContext(ctx, itemQuery,
			item.OrderID, item.ProductID, item.ProductName, item.VariationDetails,
			item.Quantity, item.UnitPrice, item.Subtotal,
		)
		if err != nil {
			tx.Rollback()
			return models.Order{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id string) (models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`

	order, err := scanOrder(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Order{}, models.ErrOrderNotFound
		}
		return models.Order{}, err
	}

	order.Items, err = r.getOrderItems(ctx, order.ID)
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (r *OrderRepository) getOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, product_id, product_name, variation_details, quantity, unit_price, subtotal
		FROM order_items
		WHERE order_id = ?
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.VariationDetails,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *OrderRepository) GetOrdersByUserID(ctx context.Context, userID int) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = ? ORDER BY created_at DESC`
	return r.queryOrders(ctx, query, userID)
}

func (r *OrderRepository) GetAllOrders(ctx context.Context, status string) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	return r.queryOrders(ctx, query, args...)
}

// GetAssignedOrders returns orders assigned to one delivery person, newest
// first, excluding finished ones.
func (r *OrderRepository) GetAssignedOrders(ctx context.Context, deliveryPersonID int) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE assigned_to = ? AND status NOT IN (?, ?)
		ORDER BY created_at DESC`
	return r.queryOrders(ctx, query, deliveryPersonID, models.OrderDelivered, models.OrderCancelled)
}

func (r *OrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]models.Order, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items, err = r.getOrderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id, status string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now(), id,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) AssignOrder(ctx context.Context, id string, deliveryPersonID int) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE orders SET assigned_to = ?, updated_at = ? WHERE id = ?`,
		deliveryPersonID, time.Now(), id,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) SetRazorpayOrderID(ctx context.Context, id, razorpayOrderID string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE orders SET razorpay_order_id = ?, updated_at = ? WHERE id = ?`,
		razorpayOrderID, time.Now(), id,
	)
	return err
}

// MarkPaid records the verified payment and confirms the order.
func (r *OrderRepository) MarkPaid(ctx context.Context, id, razorpayPaymentID string) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE orders
		SET razorpay_payment_id = ?, payment_status = 'paid', status = ?, updated_at = ?
		WHERE id = ?
	`, razorpayPaymentID, models.OrderConfirmed, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}

// CancelStaleUnpaid cancels online orders abandoned at the payment step.
// Only orders still pending with an unpaid gateway order are touched.
func (r *OrderRepository) CancelStaleUnpaid(ctx context.Context, olderThan time.Time) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE orders
		SET status = ?, updated_at = ?
		WHERE status = ?
		  AND payment_method = ?
		  AND payment_status = 'pending'
		  AND created_at < ?
	`, models.OrderCancelled, time.Now(), models.OrderPending, models.PaymentRazorpay, olderThan)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
