package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/Vivek212004/bake-cart-manager/internal/models"
)

type ProductRepository struct {
	DB *sql.DB
}

const productColumns = `
	p.id, p.category_id, p.name, p.description, p.base_price, p.pricing_type,
	p.is_sold_by_weight, p.min_weight_grams, p.allow_custom_weight, p.egg_type,
	p.image_url, p.is_available, p.variations, c.name,
	COALESCE(r.avg_rating, 0), COALESCE(r.reviews_count, 0),
	p.created_at, p.updated_at
`

const productFrom = `
	FROM products p
	JOIN categories c ON c.id = p.category_id
	LEFT JOIN (
		SELECT product_id, AVG(rating) AS avg_rating, COUNT(*) AS reviews_count
		FROM reviews
		GROUP BY product_id
	) r ON r.product_id = p.id
`

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	var variations sql.NullString

	err := row.Scan(
		&p.ID,
		&p.CategoryID,
		&p.Name,
		&p.Description,
		&p.BasePrice,
		&p.PricingType,
		&p.IsSoldByWeight,
		&p.MinWeightGrams,
		&p.AllowCustomWeight,
		&p.EggType,
		&p.ImageURL,
		&p.IsAvailable,
		&variations,
		&p.CategoryName,
		&p.AvgRating,
		&p.ReviewsCount,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return models.Product{}, err
	}
	if variations.Valid && variations.String != "" {
		p.Variations = json.RawMessage(variations.String)
	}
	return p, nil
}

func (r *ProductRepository) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	p.CreatedAt = time.Now()

	query := `
		INSERT INTO products (id, category_id, name, description, base_price, pricing_type,
			is_sold_by_weight, min_weight_grams, allow_custom_weight, egg_type,
			image_url, is_available, variations, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.CategoryID, p.Name, p.Description, p.BasePrice, p.EffectivePricingType(),
		p.IsSoldByWeight, p.MinWeightGrams, p.AllowCustomWeight, p.EggType,
		p.ImageURL, p.IsAvailable, string(p.Variations), p.CreatedAt,
	)
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id string) (models.Product, error) {
	query := `SELECT ` + productColumns + productFrom + ` WHERE p.id = ?`

	p, err := scanProduct(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Product{}, models.ErrProductNotFound
		}
		return models.Product{}, err
	}
	return p, nil
}

// GetMenu returns available products, optionally limited to one category.
func (r *ProductRepository) GetMenu(ctx context.Context, categoryID string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + productFrom + ` WHERE p.is_available = TRUE`
	args := []any{}
	if categoryID != "" {
		query += ` AND p.category_id = ?`
		args = append(args, categoryID)
	}
	query += ` ORDER BY c.display_order, p.name`

	return r.queryProducts(ctx, query, args...)
}

// GetAllProducts returns the full catalog for the admin dashboard, hidden
// products included.
func (r *ProductRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + productFrom + ` ORDER BY p.created_at DESC`
	return r.queryProducts(ctx, query)
}

func (r *ProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	now := time.Now()
	p.UpdatedAt = &now

	query := `
		UPDATE products
		SET category_id = ?, name = ?, description = ?, base_price = ?, pricing_type = ?,
			is_sold_by_weight = ?, min_weight_grams = ?, allow_custom_weight = ?, egg_type = ?,
			image_url = ?, is_available = ?, variations = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query,
		p.CategoryID, p.Name, p.Description, p.BasePrice, p.EffectivePricingType(),
		p.IsSoldByWeight, p.MinWeightGrams, p.AllowCustomWeight, p.EggType,
		p.ImageURL, p.IsAvailable, string(p.Variations), p.UpdatedAt, p.ID,
	)
	if err != nil {
		return models.Product{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return models.Product{}, err
	}
	if affected == 0 {
		return models.Product{}, models.ErrProductNotFound
	}
	return p, nil
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrProductNotFound
	}
	return nil
}

// SetAvailabilityBulk flips is_available on a batch of products in one
// statement (the dashboard's bulk action).
func (r *ProductRepository) SetAvailabilityBulk(ctx context.Context, ids []string, available bool) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := `UPDATE products SET is_available = ?, updated_at = ? WHERE id IN (` + placeholders + `)`

	args := make([]any, 0, len(ids)+2)
	args = append(args, available, time.Now())
	for _, id := range ids {
		args = append(args, id)
	}

	_, err := r.DB.ExecContext(ctx, query, args...)
	return err
}
