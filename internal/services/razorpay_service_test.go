package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRazorpayCreateOrder(t *testing.T) {
	var gotPath, gotAuthUser string
	var gotBody razorpayOrderRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuthUser, _, _ = r.BasicAuth()
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		json.NewEncoder(w).Encode(RazorpayOrder{
			ID:       "order_N9Xg1",
			Amount:   gotBody.Amount,
			Currency: "INR",
			Receipt:  gotBody.Receipt,
			Status:   "created",
		})
	}))
	defer server.Close()

	svc := &RazorpayService{KeyID: "rzp_test_key", KeySecret: "secret", BaseURL: server.URL}

	order, err := svc.CreateOrder(context.Background(), 549.50, "ord-42")
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if gotPath != "/v1/orders" {
		t.Errorf("path = %q; want /v1/orders", gotPath)
	}
	if gotAuthUser != "rzp_test_key" {
		t.Errorf("basic auth user = %q; want rzp_test_key", gotAuthUser)
	}
	if gotBody.Amount != 54950 {
		t.Errorf("amount = %d paise; want 54950", gotBody.Amount)
	}
	if gotBody.Receipt != "ord-42" {
		t.Errorf("receipt = %q; want ord-42", gotBody.Receipt)
	}
	if order.ID != "order_N9Xg1" || order.Status != "created" {
		t.Errorf("order = %+v", order)
	}
}

func TestRazorpayCreateOrderAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount must be at least INR 1.00"}}`))
	}))
	defer server.Close()

	svc := &RazorpayService{KeyID: "k", KeySecret: "s", BaseURL: server.URL}

	if _, err := svc.CreateOrder(context.Background(), 0.001, "ord-1"); err == nil {
		t.Fatal("expected an error from a 400 response")
	}
}

func TestVerifySignature(t *testing.T) {
	svc := &RazorpayService{KeySecret: "secret"}

	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte("order_abc|pay_def"))
	valid := hex.EncodeToString(mac.Sum(nil))

	if !svc.VerifySignature("order_abc", "pay_def", valid) {
		t.Error("valid signature rejected")
	}
	if svc.VerifySignature("order_abc", "pay_def", "deadbeef") {
		t.Error("forged signature accepted")
	}
	if svc.VerifySignature("order_xyz", "pay_def", valid) {
		t.Error("signature for another order accepted")
	}
	if svc.VerifySignature("order_abc", "pay_def", "") {
		t.Error("empty signature accepted")
	}
}
