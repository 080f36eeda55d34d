package services

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
)

// RazorpayService talks to the Razorpay Orders API and verifies payment
// callbacks. Amounts cross the wire in paise.
type RazorpayService struct {
	KeyID     string
	KeySecret string
	BaseURL   string // defaults to https://api.razorpay.com
	Client    *http.Client
}

type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type razorpayOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type razorpayErrorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func (s *RazorpayService) baseURL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return "https://api.razorpay.com"
}

func (s *RazorpayService) httpClient() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return http.DefaultClient
}

// CreateOrder registers a gateway order for the given rupee amount and ties
// it to our order id via the receipt field.
func (s *RazorpayService) CreateOrder(ctx context.Context, amountRupees float64, orderID string) (RazorpayOrder, error) {
	payload := razorpayOrderRequest{
		Amount:   int64(math.Round(amountRupees * 100)),
		Currency: "INR",
		Receipt:  orderID,
		Notes:    map[string]string{"order_id": orderID},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return RazorpayOrder{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL()+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return RazorpayOrder{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(s.KeyID, s.KeySecret)

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return RazorpayOrder{}, fmt.Errorf("razorpay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr razorpayErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Description != "" {
			return RazorpayOrder{}, fmt.Errorf("razorpay: %s", apiErr.Error.Description)
		}
		return RazorpayOrder{}, fmt.Errorf("razorpay: unexpected status %d", resp.StatusCode)
	}

	var order RazorpayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return RazorpayOrder{}, fmt.Errorf("razorpay: decoding response: %w", err)
	}
	return order, nil
}

// VerifySignature checks the checkout callback signature:
// HMAC-SHA256(razorpayOrderID + "|" + razorpayPaymentID, keySecret) in hex.
func (s *RazorpayService) VerifySignature(razorpayOrderID, razorpayPaymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.KeySecret))
	mac.Write([]byte(razorpayOrderID + "|" + razorpayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
