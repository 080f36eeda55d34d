package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/Vivek212004/bake-cart-manager/internal/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

func (r *ReviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	var exists int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reviews WHERE product_id = ? AND user_id = ?`,
		review.ProductID, review.UserID,
	).Scan(&exists)
	if err != nil {
		return models.Review{}, err
	}
	if exists > 0 {
		return models.Review{}, models.ErrReviewExists
	}

	review.CreatedAt = time.Now()

	result, err := r.DB.ExecContext(ctx, `
		INSERT INTO reviews (product_id, user_id, reviewer_name, rating, comment, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, review.ProductID, review.UserID, review.ReviewerName, review.Rating, review.Comment, review.CreatedAt)
	if err != nil {
		return models.Review{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Review{}, err
	}
	review.ID = int(id)
	return review, nil
}

func (r *ReviewRepository) GetReviewsByProductID(ctx context.Context, productID string) (models.ProductReviews, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, product_id, user_id, reviewer_name, rating, comment, created_at
		FROM reviews
		WHERE product_id = ?
		ORDER BY created_at DESC
	`, productID)
	if err != nil {
		return models.ProductReviews{}, err
	}
	defer rows.Close()

	var out models.ProductReviews
	var total int
	for rows.Next() {
		var review models.Review
		err := rows.Scan(
			&review.ID,
			&review.ProductID,
			&review.UserID,
			&review.ReviewerName,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			return models.ProductReviews{}, err
		}
		out.Reviews = append(out.Reviews, review)
		total += review.Rating
	}
	if err := rows.Err(); err != nil {
		return models.ProductReviews{}, err
	}

	out.Count = len(out.Reviews)
	if out.Count > 0 {
		out.AvgRating = float64(total) / float64(out.Count)
	}
	return out, nil
}

// GetTopReviews returns the highest-rated recent reviews for the home page
// showcase, joined with the product name.
func (r *ReviewRepository) GetTopReviews(ctx context.Context, limit int) ([]models.Review, error) {
	if limit <= 0 {
		limit = 6
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT rv.id, rv.product_id, rv.user_id, rv.reviewer_name, rv.rating, rv.comment, rv.created_at, p.name
		FROM reviews rv
		JOIN products p ON p.id = rv.product_id
		WHERE rv.rating >= 4
		ORDER BY rv.rating DESC, rv.created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var review models.Review
		err := rows.Scan(
			&review.ID,
			&review.ProductID,
			&review.UserID,
			&review.ReviewerName,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.ProductName,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrReviewNotFound
	}
	return nil
}
