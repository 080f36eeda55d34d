package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Vivek212004/bake-cart-manager/internal/models"
)

// CartRepository keeps carts in Redis as JSON values, keyed by the owner
// (user id or guest session id). Carts are working state, not records: they
// expire after 30 days of inactivity, like the storefront's local cart.
type CartRepository struct {
	RDB *redis.Client
}

const cartTTL = 30 * 24 * time.Hour

func cartKey(ownerID string) string {
	return fmt.Sprintf("cart:%s", ownerID)
}

func (r *CartRepository) GetItems(ctx context.Context, ownerID string) ([]models.CartItem, error) {
	data, err := r.RDB.Get(ctx, cartKey(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		// a corrupt cart is discarded, not a fatal error
		_ = r.RDB.Del(ctx, cartKey(ownerID)).Err()
		return nil, nil
	}
	return items, nil
}

func (r *CartRepository) SaveItems(ctx context.Context, ownerID string, items []models.CartItem) error {
	if len(items) == 0 {
		return r.Clear(ctx, ownerID)
	}

	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.RDB.Set(ctx, cartKey(ownerID), data, cartTTL).Err()
}

func (r *CartRepository) Clear(ctx context.Context, ownerID string) error {
	return r.RDB.Del(ctx, cartKey(ownerID)).Err()
}
