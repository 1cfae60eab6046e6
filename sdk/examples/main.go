package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dealdesk/dealdesk/sdk/client"
)

const (
	// Change these values to match your environment
	serviceURL = "http://localhost:8080"

	salespersonEmail    = "salesperson@example.com"
	salespersonPassword = "change-me"
	supervisorEmail     = "supervisor@example.com"
	supervisorPassword  = "change-me"

	customerID = "00000000-0000-0000-0000-000000000000"
)

func main() {
	// Initialize the client
	config := &client.Config{
		BaseURL: serviceURL,
		Timeout: 10 * time.Second,
	}
	c := client.NewClient(config)

	// Create a context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Run the example
	if err := runExample(ctx, c); err != nil {
		log.Fatalf("Error running example: %v", err)
	}
}

func runExample(ctx context.Context, c *client.Client) error {
	fmt.Println("Running DealDesk SDK example...")

	// Step 1: Log in as the salesperson
	fmt.Println("\n1. Logging in as salesperson...")
	login, err := c.Login(ctx, salespersonEmail, salespersonPassword)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	fmt.Printf("Logged in as %s %s (%s)\n", login.User.FirstName, login.User.LastName, login.User.Role)

	// Step 2: Create a sales card for a customer
	fmt.Println("\n2. Creating a sales card...")
	card, err := c.CreateSalesCard(ctx, &client.CreateSalesCardRequest{
		CustomerID:  customerID,
		Title:       "Forklift order",
		Description: "Two FL-200 units with service plan",
	})
	if err != nil {
		return fmt.Errorf("sales card creation failed: %w", err)
	}
	fmt.Printf("Created sales card %s\n", card.SalesCard.ID)

	// Step 3: Submit the card for order confirmation
	fmt.Println("\n3. Submitting for approval...")
	submitted, err := c.SubmitApproval(ctx, card.SalesCard.ID, &client.SubmitApprovalRequest{
		ImageURL: "https://cdn.example.com/contracts/forklift.png",
	})
	if err != nil {
		return fmt.Errorf("approval submission failed: %w", err)
	}
	for _, n := range submitted.Notifications {
		fmt.Printf("Notified %s (%s)\n", n.ReceiverRole, n.ID)
	}

	// Step 4: Log in as the supervisor and confirm the order
	fmt.Println("\n4. Approving as supervisor...")
	if _, err := c.Login(ctx, supervisorEmail, supervisorPassword); err != nil {
		return fmt.Errorf("supervisor login failed: %w", err)
	}

	pending, err := c.PendingApprovals(ctx)
	if err != nil {
		return fmt.Errorf("listing approvals failed: %w", err)
	}
	if len(pending.Notifications) == 0 {
		return fmt.Errorf("no pending approvals found")
	}

	decision, err := c.Approve(ctx, pending.Notifications[0].ID)
	if err != nil {
		return fmt.Errorf("approval failed: %w", err)
	}
	fmt.Printf("Notification %s is now %s\n", decision.Notification.ID, decision.Notification.Status)

	fmt.Println("\nExample completed successfully!")
	return nil
}
