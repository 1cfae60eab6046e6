package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	// Test with nil config
	client := NewClient(nil)
	if client.config.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected default BaseURL, got %s", client.config.BaseURL)
	}
	if client.client != http.DefaultClient {
		t.Error("Expected default HTTP client")
	}

	// Test with custom config
	customConfig := &Config{
		BaseURL:    "http://example.com",
		Timeout:    5 * time.Second,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
	client = NewClient(customConfig)
	if client.config.BaseURL != "http://example.com" {
		t.Errorf("Expected custom BaseURL, got %s", client.config.BaseURL)
	}
	if client.config.Timeout != 5*time.Second {
		t.Errorf("Expected custom timeout, got %v", client.config.Timeout)
	}
	if client.client != customConfig.HTTPClient {
		t.Error("Expected custom HTTP client")
	}
}

func TestLogin(t *testing.T) {
	// Create a test server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("Expected /api/auth/login path, got %s", r.URL.Path)
		}

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		if req.Email != "ada@example.com" || req.Password != "secret-password" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{"ok": false, "error": "Invalid credentials"})
			return
		}

		resp := LoginResponse{
			Ok:    true,
			Token: "test-token",
			User:  &User{ID: "11111111-1111-1111-1111-111111111111", Email: req.Email, Role: "salesperson"},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})

	resp, err := client.Login(context.Background(), "ada@example.com", "secret-password")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token != "test-token" {
		t.Errorf("Expected token test-token, got %s", resp.Token)
	}
	if resp.User == nil || resp.User.Role != "salesperson" {
		t.Error("Expected salesperson user in response")
	}
	if client.config.Token != "test-token" {
		t.Error("Expected login to store the bearer token on the client")
	}

	// Wrong password surfaces the API error
	_, err = client.Login(context.Background(), "ada@example.com", "wrong")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Invalid credentials" {
		t.Errorf("Expected invalid credentials message, got %s", apiErr.Message)
	}

	// Missing fields are rejected before any request is made
	if _, err := client.Login(context.Background(), "", "secret-password"); err == nil {
		t.Error("Expected error for missing email")
	}
}

func TestSubmitApproval(t *testing.T) {
	cardID := "22222222-2222-2222-2222-222222222222"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/api/sales-cards/"+cardID+"/submit" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Expected bearer token header, got %q", got)
		}

		var req SubmitApprovalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		if req.ImageURL != "https://cdn.example.com/contract.png" {
			t.Errorf("Unexpected image URL %s", req.ImageURL)
		}

		resp := ApprovalResponse{
			Ok: true,
			Notifications: []*ApprovalNotification{
				{ID: "n1", SalesCardID: cardID, ReceiverRole: "supervisor", Status: "pending"},
				{ID: "n2", SalesCardID: cardID, ReceiverRole: "admin", Status: "pending"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "test-token"})

	resp, err := client.SubmitApproval(context.Background(), cardID, &SubmitApprovalRequest{
		ImageURL: "https://cdn.example.com/contract.png",
	})
	if err != nil {
		t.Fatalf("SubmitApproval failed: %v", err)
	}
	if len(resp.Notifications) != 2 {
		t.Fatalf("Expected 2 notifications, got %d", len(resp.Notifications))
	}
	if resp.Notifications[0].ReceiverRole != "supervisor" {
		t.Errorf("Expected supervisor notification first, got %s", resp.Notifications[0].ReceiverRole)
	}

	if _, err := client.SubmitApproval(context.Background(), "", nil); err == nil {
		t.Error("Expected error for missing sales card id")
	}
}

func TestApprove(t *testing.T) {
	notificationID := "33333333-3333-3333-3333-333333333333"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/approvals/" + notificationID + "/approve":
			resp := DecisionResponse{
				Ok:           true,
				Notification: &ApprovalNotification{ID: notificationID, Status: "approved"},
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(resp)
		case "/api/approvals/" + notificationID + "/reject":
			// Already resolved by the sibling channel
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]interface{}{"ok": false, "error": "Approval request already processed"})
		default:
			t.Errorf("Unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "test-token"})

	resp, err := client.Approve(context.Background(), notificationID)
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if resp.Notification.Status != "approved" {
		t.Errorf("Expected approved status, got %s", resp.Notification.Status)
	}

	_, err = client.Reject(context.Background(), notificationID)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", apiErr.StatusCode)
	}
}

func TestCompleteTask(t *testing.T) {
	taskID := "44444444-4444-4444-4444-444444444444"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tasks/"+taskID+"/complete" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		resp := TaskResponse{Ok: true, Task: &Task{ID: taskID, Status: "Completed"}}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "test-token"})

	resp, err := client.CompleteTask(context.Background(), taskID)
	if err != nil {
		t.Fatalf("CompleteTask failed: %v", err)
	}
	if resp.Task.Status != "Completed" {
		t.Errorf("Expected Completed status, got %s", resp.Task.Status)
	}
}

func TestDeleteSalesCard(t *testing.T) {
	cardID := "55555555-5555-5555-5555-555555555555"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("Expected DELETE request, got %s", r.Method)
		}
		if r.URL.Path != "/api/sales-cards/"+cardID {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "test-token"})

	if err := client.DeleteSalesCard(context.Background(), cardID); err != nil {
		t.Fatalf("DeleteSalesCard failed: %v", err)
	}
}

func TestAPIErrorDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		details := []string{"Title failed on required"}
		json.NewEncoder(w).Encode(APIError{Message: "Validation failed", Details: &details})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "test-token"})

	_, err := client.CreateSalesCard(context.Background(), &CreateSalesCardRequest{
		CustomerID: "66666666-6666-6666-6666-666666666666",
		Title:      "Forklift order",
	})
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.Message != "Validation failed" {
		t.Errorf("Unexpected message %s", apiErr.Message)
	}
	if apiErr.Details == nil || len(*apiErr.Details) != 1 {
		t.Error("Expected validation details to be decoded")
	}
}
