package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Vivek212004/bake-cart-manager/internal/delivery"
	"github.com/Vivek212004/bake-cart-manager/internal/models"
	"github.com/Vivek212004/bake-cart-manager/internal/services"
)

func TestCheckDelivery(t *testing.T) {
	bakery := models.GeoPoint{Latitude: 17.4399, Longitude: 78.4983}
	h := &OrderHandler{Service: &services.OrderService{
		Calculator: delivery.NewCalculator(bakery, 20, 1.5),
	}}

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantWithin bool
	}{
		{
			name:       "bakery itself is inside",
			body:       `{"latitude": 17.4399, "longitude": 78.4983}`,
			wantStatus: http.StatusOK,
			wantWithin: true,
		},
		{
			name:       "another city is outside",
			body:       `{"latitude": 28.6139, "longitude": 77.2090}`,
			wantStatus: http.StatusOK,
			wantWithin: false,
		},
		{
			name:       "malformed body",
			body:       `{"latitude": "x"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/delivery/check", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			h.CheckDelivery(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d; want %d", rr.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var check models.DeliveryCheck
			if err := json.NewDecoder(rr.Body).Decode(&check); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if check.WithinRadius != tt.wantWithin {
				t.Errorf("within_radius = %v (%.1f km); want %v", check.WithinRadius, check.DistanceKm, tt.wantWithin)
			}
		})
	}
}

func TestCheckoutRequiresAuth(t *testing.T) {
	h := &OrderHandler{Service: &services.OrderService{}}

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	h.Checkout(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d; want %d", rr.Code, http.StatusUnauthorized)
	}
}
