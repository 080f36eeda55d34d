package services

import (
	"context"
	"errors"

	"github.com/Vivek212004/bake-cart-manager/internal/models"
	"github.com/Vivek212004/bake-cart-manager/internal/repositories"
)

type ReviewService struct {
	ReviewRepo  *repositories.ReviewRepository
	ProductRepo *repositories.ProductRepository
}

func (s *ReviewService) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return models.Review{}, errors.New("rating must be between 1 and 5")
	}

	if _, err := s.ProductRepo.GetProductByID(ctx, review.ProductID); err != nil {
		return models.Review{}, err
	}

	return s.ReviewRepo.CreateReview(ctx, review)
}

func (s *ReviewService) GetReviewsByProductID(ctx context.Context, productID string) (models.ProductReviews, error) {
	return s.ReviewRepo.GetReviewsByProductID(ctx, productID)
}

func (s *ReviewService) GetTopReviews(ctx context.Context, limit int) ([]models.Review, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.ReviewRepo.GetTopReviews(ctx, limit)
}

func (s *ReviewService) DeleteReview(ctx context.Context, reviewID int) error {
	return s.ReviewRepo.DeleteReview(ctx, reviewID)
}
