package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Vivek212004/bake-cart-manager/internal/models"
	"github.com/Vivek212004/bake-cart-manager/internal/repositories"
)

type ProductService struct {
	ProductRepo *repositories.ProductRepository
}

func (s *ProductService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	return s.ProductRepo.CreateProduct(ctx, product)
}

func (s *ProductService) GetProductByID(ctx context.Context, id string) (models.Product, error) {
	return s.ProductRepo.GetProductByID(ctx, id)
}

func (s *ProductService) GetMenu(ctx context.Context, categoryID string) ([]models.Product, error) {
	return s.ProductRepo.GetMenu(ctx, categoryID)
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.ProductRepo.GetAllProducts(ctx)
}

func (s *ProductService) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	return s.ProductRepo.UpdateProduct(ctx, product)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.ProductRepo.DeleteProduct(ctx, id)
}

func (s *ProductService) SetAvailabilityBulk(ctx context.Context, req models.BulkAvailabilityRequest) error {
	return s.ProductRepo.SetAvailabilityBulk(ctx, req.ProductIDs, req.IsAvailable)
}
