package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Config represents the configuration for the DealDesk API client
type Config struct {
	// BaseURL is the base URL of the DealDesk API, without the /api prefix
	BaseURL string
	// Token is an optional bearer token; Login sets it automatically
	Token string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:8080",
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
	}
}

// Client is the DealDesk API client
type Client struct {
	config *Config
	client *http.Client
}

// NewClient creates a new API client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

// SetToken replaces the bearer token used on authenticated requests
func (c *Client) SetToken(token string) {
	c.config.Token = token
}

// User represents a staff account returned by the API
type User struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Phone        string  `json:"phone"`
	Role         string  `json:"role"`
	OrgID        *string `json:"org_id"`
	SupervisorID *string `json:"supervisor_id"`
	AdminID      *string `json:"admin_id"`
}

// SalesCard represents a sales card returned by the API
type SalesCard struct {
	ID            string    `json:"id"`
	SalespersonID string    `json:"salesperson_id"`
	CustomerID    string    `json:"customer_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url"`
	StatusID      int       `json:"status_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ApprovalNotification represents a pending or resolved approval request
type ApprovalNotification struct {
	ID           string    `json:"id"`
	SalesCardID  string    `json:"sales_card_id"`
	SenderID     string    `json:"sender_id"`
	ReceiverID   string    `json:"receiver_id"`
	ReceiverRole string    `json:"receiver_role"`
	Status       string    `json:"status"`
	Message      string    `json:"message"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// Task represents a follow-up task returned by the API
type Task struct {
	ID            string    `json:"id"`
	SalesCardID   string    `json:"sales_card_id"`
	SalespersonID string    `json:"salesperson_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Ok    bool   `json:"ok"`
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Login authenticates against the API and stores the returned token on the
// client for subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	endpoint := fmt.Sprintf("%s/api/auth/login", c.config.BaseURL)
	var resp LoginResponse
	if err := c.post(ctx, endpoint, &LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}

	c.config.Token = resp.Token
	return &resp, nil
}

// CreateSalesCardRequest represents a sales card creation request
type CreateSalesCardRequest struct {
	CustomerID  string `json:"customer_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// SalesCardResponse represents a single sales card response
type SalesCardResponse struct {
	Ok        bool       `json:"ok"`
	SalesCard *SalesCard `json:"sales_card"`
}

// CreateSalesCard creates a new sales card for the authenticated salesperson
func (c *Client) CreateSalesCard(ctx context.Context, req *CreateSalesCardRequest) (*SalesCardResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.CustomerID == "" || req.Title == "" {
		return nil, errors.New("customer_id and title are required")
	}

	endpoint := fmt.Sprintf("%s/api/sales-cards", c.config.BaseURL)
	var resp SalesCardResponse
	if err := c.post(ctx, endpoint, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSalesCard retrieves a sales card by ID
func (c *Client) GetSalesCard(ctx context.Context, id string) (*SalesCardResponse, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}

	endpoint := fmt.Sprintf("%s/api/sales-cards/%s", c.config.BaseURL, id)
	var resp SalesCardResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteSalesCard soft deletes a sales card by ID
func (c *Client) DeleteSalesCard(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("id is required")
	}

	endpoint := fmt.Sprintf("%s/api/sales-cards/%s", c.config.BaseURL, id)
	return c.delete(ctx, endpoint)
}

// SubmitApprovalRequest represents an order confirmation request
type SubmitApprovalRequest struct {
	ImageURL    string   `json:"image_url,omitempty"`
	NotifyRoles []string `json:"notify_roles,omitempty"`
}

// ApprovalResponse represents the notifications raised by a submission
type ApprovalResponse struct {
	Ok            bool                    `json:"ok"`
	Notifications []*ApprovalNotification `json:"notifications"`
}

// SubmitApproval asks supervisor and admin to confirm a sales card as an order
func (c *Client) SubmitApproval(ctx context.Context, salesCardID string, req *SubmitApprovalRequest) (*ApprovalResponse, error) {
	if salesCardID == "" {
		return nil, errors.New("sales card id is required")
	}
	if req == nil {
		req = &SubmitApprovalRequest{}
	}

	endpoint := fmt.Sprintf("%s/api/sales-cards/%s/submit", c.config.BaseURL, salesCardID)
	var resp ApprovalResponse
	if err := c.post(ctx, endpoint, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PendingApprovals lists approval requests addressed to the authenticated user
func (c *Client) PendingApprovals(ctx context.Context) (*ApprovalResponse, error) {
	endpoint := fmt.Sprintf("%s/api/approvals", c.config.BaseURL)
	var resp ApprovalResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DecisionResponse represents a resolved approval notification
type DecisionResponse struct {
	Ok           bool                  `json:"ok"`
	Notification *ApprovalNotification `json:"notification"`
}

// Approve confirms the sales card behind an approval notification
func (c *Client) Approve(ctx context.Context, notificationID string) (*DecisionResponse, error) {
	return c.decide(ctx, notificationID, "approve")
}

// Reject declines an approval notification, leaving the card unchanged
func (c *Client) Reject(ctx context.Context, notificationID string) (*DecisionResponse, error) {
	return c.decide(ctx, notificationID, "reject")
}

func (c *Client) decide(ctx context.Context, notificationID, action string) (*DecisionResponse, error) {
	if notificationID == "" {
		return nil, errors.New("notification id is required")
	}

	endpoint := fmt.Sprintf("%s/api/approvals/%s/%s", c.config.BaseURL, notificationID, action)
	var resp DecisionResponse
	if err := c.post(ctx, endpoint, struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TaskResponse represents a single task response
type TaskResponse struct {
	Ok   bool  `json:"ok"`
	Task *Task `json:"task"`
}

// CompleteTask marks a follow-up task completed, scheduling the next iteration
func (c *Client) CompleteTask(ctx context.Context, taskID string) (*TaskResponse, error) {
	if taskID == "" {
		return nil, errors.New("task id is required")
	}

	endpoint := fmt.Sprintf("%s/api/tasks/%s/complete", c.config.BaseURL, taskID)
	var resp TaskResponse
	if err := c.post(ctx, endpoint, struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// APIError defines a standardized error response from the API
type APIError struct {
	StatusCode int       `json:"-"`
	Message    string    `json:"error"`
	Details    *[]string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Details != nil && len(*e.Details) > 0 {
		return fmt.Sprintf("%s: %s (Status: %d)", e.Message, strings.Join(*e.Details, "; "), e.StatusCode)
	}
	return fmt.Sprintf("%s (Status: %d)", e.Message, e.StatusCode)
}

// post performs a POST request to the specified endpoint with the given request and unmarshals the response into the specified response object
func (c *Client) post(ctx context.Context, endpoint string, req interface{}, resp interface{}) error {
	// Set up context with timeout
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	// Marshal request to JSON
	reqBody, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	// Create HTTP request
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.authorize(httpReq)

	// Send request
	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	if err := checkStatus(httpResp); err != nil {
		return err
	}

	// Decode response
	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// get performs a GET request to the specified endpoint and unmarshals the response into the specified response object
func (c *Client) get(ctx context.Context, endpoint string, resp interface{}) error {
	// Set up context with timeout
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	// Create HTTP request
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	c.authorize(httpReq)

	// Send request
	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	if err := checkStatus(httpResp); err != nil {
		return err
	}

	// Decode response
	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// delete performs a DELETE request to the specified endpoint
func (c *Client) delete(ctx context.Context, endpoint string) error {
	// Set up context with timeout
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	// Create HTTP request
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(httpReq)

	// Send request
	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	return checkStatus(httpResp)
}

func (c *Client) authorize(req *http.Request) {
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}
}

// checkStatus converts non-success responses into an APIError
func checkStatus(httpResp *http.Response) error {
	if httpResp.StatusCode >= 200 && httpResp.StatusCode < 300 {
		return nil
	}

	// Try to decode error response
	var apiErr APIError
	if err := json.NewDecoder(httpResp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
		// If we can't decode the error, create a generic one
		return &APIError{
			StatusCode: httpResp.StatusCode,
			Message:    fmt.Sprintf("request failed with status code %d", httpResp.StatusCode),
		}
	}

	apiErr.StatusCode = httpResp.StatusCode
	return &apiErr
}
