package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/dangerclosesec/structura/sdk/client"
)

const (
	// Change these values to match your environment
	serviceURL = "http://localhost:8080"
	password   = "example-password"
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
	fmt.Println("Running structura SDK example...")
	suffix := time.Now().Format("150405")

	// Step 1: Register a boss and an employee
	fmt.Println("\n1. Registering users...")
	bossEmail := "boss-" + suffix + "@example.com"
	if _, err := c.Register(ctx, &client.RegisterRequest{Email: bossEmail, Password: password, Name: "Boss"}); err != nil {
		return fmt.Errorf("failed to register boss: %w", err)
	}
	workerEmail := "worker-" + suffix + "@example.com"
	worker, err := c.Register(ctx, &client.RegisterRequest{Email: workerEmail, Password: password, Name: "Worker"})
	if err != nil {
		return fmt.Errorf("failed to register worker: %w", err)
	}

	// Step 2: The boss creates a structure and becomes its administrator
	fmt.Println("\n2. Creating structure...")
	if _, err := c.Login(ctx, bossEmail, password); err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}
	bossToken := c.Token()
	structure, adminRole, err := c.CreateStructure(ctx, "Example Co "+suffix, "")
	if err != nil {
		return fmt.Errorf("failed to create structure: %w", err)
	}
	fmt.Printf("Structure %s created, admin role %s\n", structure.Name, adminRole.ID)

	// Step 3: Give the worker a role and put it under the admin
	fmt.Println("\n3. Building hierarchy...")
	workerRole, err := c.CreateRole(ctx, &client.CreateRoleRequest{Name: "Engineer", UserID: worker.ID})
	if err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}
	if _, err := c.CreateRelation(ctx, adminRole.ID, workerRole.ID); err != nil {
		return fmt.Errorf("failed to create relation: %w", err)
	}

	// A reverse edge would close a cycle
	_, err = c.CreateRelation(ctx, workerRole.ID, adminRole.ID)
	if !client.IsStatus(err, http.StatusForbidden) {
		return fmt.Errorf("expected cycle to be rejected, got %v", err)
	}
	fmt.Println("Cycle rejected as expected")

	// Step 4: Assign, complete and rate a task
	fmt.Println("\n4. Assigning a task...")
	task, err := c.CreateTask(ctx, &client.CreateTaskRequest{
		Name:       "Quarterly report",
		CompleteBy: time.Now().Add(48 * time.Hour),
		AssigneeID: worker.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	if _, err := c.Login(ctx, workerEmail, password); err != nil {
		return fmt.Errorf("failed to log in as worker: %w", err)
	}
	for _, status := range []string{"IN_WORK", "COMPLETED"} {
		if _, err := c.UpdateTaskStatus(ctx, task.ID, status); err != nil {
			return fmt.Errorf("failed to move task to %s: %w", status, err)
		}
	}

	c.SetToken(bossToken)
	if _, err := c.RateTask(ctx, task.ID, 3); err != nil {
		return fmt.Errorf("failed to rate task: %w", err)
	}

	rating, err := c.TeamRating(ctx)
	if err != nil {
		return fmt.Errorf("failed to read team rating: %w", err)
	}
	fmt.Printf("Team rating: %.2f\n", rating)

	// Step 5: Inspect the result
	fmt.Println("\n5. Hierarchy:")
	hierarchy, err := c.Hierarchy(ctx)
	if err != nil {
		return fmt.Errorf("failed to load hierarchy: %w", err)
	}
	for _, rel := range hierarchy.Relations {
		fmt.Printf("  %s -> %s\n", rel.SuperiorID, rel.SubordinateID)
	}

	fmt.Println("\nExample completed successfully!")
	return nil
}
