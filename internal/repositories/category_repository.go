package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/Vivek212004/bake-cart-manager/internal/models"
)

type CategoryRepository struct {
	DB *sql.DB
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	category.CreatedAt = time.Now()

	query := `
		INSERT INTO categories (id, name, description, image_url, display_order, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.DB.ExecContext(ctx, query,
		category.ID, category.Name, category.Description, category.ImageURL,
		category.DisplayOrder, category.IsActive, category.CreatedAt,
	)
	if err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id string) (models.Category, error) {
	var category models.Category

	query := `
		SELECT id, name, description, image_url, display_order, is_active, created_at, updated_at
		FROM categories
		WHERE id = ?
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.ImageURL,
		&category.DisplayOrder,
		&category.IsActive,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Category{}, models.ErrCategoryNotFound
		}
		return models.Category{}, err
	}
	return category, nil
}

func (r *CategoryRepository) GetAllCategories(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	query := `
		SELECT id, name, description, image_url, display_order, is_active, created_at, updated_at
		FROM categories
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order, name`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.ImageURL,
			&category.DisplayOrder,
			&category.IsActive,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	now := time.Now()
	category.UpdatedAt = &now

	query := `
		UPDATE categories
		SET name = ?, description = ?, image_url = ?, display_order = ?, is_active = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query,
		category.Name, category.Description, category.ImageURL,
		category.DisplayOrder, category.IsActive, category.UpdatedAt, category.ID,
	)
	if err != nil {
		return models.Category{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return models.Category{}, err
	}
	if affected == 0 {
		return models.Category{}, models.ErrCategoryNotFound
	}
	return category, nil
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrCategoryNotFound
	}
	return nil
}
