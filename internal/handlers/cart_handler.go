package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Vivek212004/bake-cart-manager/internal/models"
	"github.com/Vivek212004/bake-cart-manager/internal/pricing"
	"github.com/Vivek212004/bake-cart-manager/internal/services"
)

type CartHandler struct {
	Service *services.CartService
}

func cartOwner(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		return "", false
	}
	return strconv.Itoa(userID), true
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	owner, ok := cartOwner(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		http.Error(w, "Missing product ID", http.StatusBadRequest)
		return
	}

	cart, err := h.Service.AddItem(r.Context(), owner, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrProductNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrProductUnavailable):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, pricing.ErrVariationRequired),
			errors.Is(err, pricing.ErrWeightOptionRequired),
			errors.Is(err, pricing.ErrEggOptionRequired),
			errors.Is(err, pricing.ErrInvalidWeight):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(cart)
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	owner, ok := cartOwner(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cart, err := h.Service.GetCart(r.Context(), owner)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cart)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	owner, ok := cartOwner(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	itemID := r.URL.Query().Get(":id")
	if itemID == "" {
		http.Error(w, "Missing item ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cart, err := h.Service.UpdateQuantity(r.Context(), owner, itemID, req.Quantity)
	if err != nil {
		if errors.Is(err, models.ErrCartItemNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	owner, ok := cartOwner(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	itemID := r.URL.Query().Get(":id")
	if itemID == "" {
		http.Error(w, "Missing item ID", http.StatusBadRequest)
		return
	}

	cart, err := h.Service.RemoveItem(r.Context(), owner, itemID)
	if err != nil {
		if errors.Is(err, models.ErrCartItemNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cart)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	owner, ok := cartOwner(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Service.ClearCart(r.Context(), owner); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
