package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Vivek212004/bake-cart-manager/internal/models"
	"github.com/Vivek212004/bake-cart-manager/internal/pricing"
	"github.com/Vivek212004/bake-cart-manager/internal/repositories"
)

type CartService struct {
	CartRepo    *repositories.CartRepository
	ProductRepo *repositories.ProductRepository
}

// AddItem resolves the price of the customer's selection server-side and puts
// the line into the cart. Client-supplied prices are never trusted.
func (s *CartService) AddItem(ctx context.Context, ownerID string, req models.AddToCartRequest) (models.Cart, error) {
	product, err := s.ProductRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return models.Cart{}, err
	}
	if !product.IsAvailable {
		return models.Cart{}, models.ErrProductUnavailable
	}

	result, err := pricing.Resolve(product, pricing.Selection{
		VariationID:     req.VariationID,
		WeightOption:    req.WeightOption,
		CustomWeightKg:  req.CustomWeightKg,
		UseCustomWeight: req.UseCustomWeight,
		EggOption:       req.EggOption,
	})
	if err != nil {
		return models.Cart{}, err
	}

	items, err := s.CartRepo.GetItems(ctx, ownerID)
	if err != nil {
		return models.Cart{}, err
	}

	items = mergeItem(items, models.CartItem{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: result.FinalPrice,
		Quantity:  1,
		Variation: result.Description,
		WeightKg:  result.WeightKg,
		ImageURL:  product.ImageURL,
	})

	if err := s.CartRepo.SaveItems(ctx, ownerID, items); err != nil {
		return models.Cart{}, err
	}
	return buildCart(items), nil
}

func (s *CartService) GetCart(ctx context.Context, ownerID string) (models.Cart, error) {
	items, err := s.CartRepo.GetItems(ctx, ownerID)
	if err != nil {
		return models.Cart{}, err
	}
	return buildCart(items), nil
}

// UpdateQuantity sets the quantity of one line; zero or less removes it.
func (s *CartService) UpdateQuantity(ctx context.Context, ownerID, itemID string, quantity int) (models.Cart, error) {
	items, err := s.CartRepo.GetItems(ctx, ownerID)
	if err != nil {
		return models.Cart{}, err
	}

	updated, found := setQuantity(items, itemID, quantity)
	if !found {
		return models.Cart{}, models.ErrCartItemNotFound
	}

	if err := s.CartRepo.SaveItems(ctx, ownerID, updated); err != nil {
		return models.Cart{}, err
	}
	return buildCart(updated), nil
}

func (s *CartService) RemoveItem(ctx context.Context, ownerID, itemID string) (models.Cart, error) {
	return s.UpdateQuantity(ctx, ownerID, itemID, 0)
}

func (s *CartService) ClearCart(ctx context.Context, ownerID string) error {
	return s.CartRepo.Clear(ctx, ownerID)
}

// mergeItem appends the line, or bumps the quantity when the same product
// with the same variation is already in the cart.
func mergeItem(items []models.CartItem, item models.CartItem) []models.CartItem {
	for i := range items {
		if items[i].ProductID == item.ProductID && items[i].Variation == item.Variation {
			items[i].Quantity += item.Quantity
			return items
		}
	}
	return append(items, item)
}

func setQuantity(items []models.CartItem, itemID string, quantity int) ([]models.CartItem, bool) {
	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		if quantity <= 0 {
			return append(items[:i], items[i+1:]...), true
		}
		items[i].Quantity = quantity
		return items, true
	}
	return items, false
}

func buildCart(items []models.CartItem) models.Cart {
	cart := models.Cart{Items: items}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	for _, item := range items {
		cart.TotalItems += item.Quantity
		cart.TotalAmount += item.UnitPrice * float64(item.Quantity)
	}
	return cart
}
