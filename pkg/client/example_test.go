package client_test

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudsentry/cloudsentry/pkg/client"
)

// Example demonstrates basic usage of the CloudSentry client
func Example() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8000",
	})

	ctx := context.Background()

	resources, err := c.Resources().List(ctx, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Found %d resources\n", len(resources))
}

// ExampleAlertService_Generate demonstrates raising and resolving an alert
func ExampleAlertService_Generate() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8000",
	})
	ctx := context.Background()

	a, err := c.Alerts().Generate(ctx, client.GenerateAlertRequest{
		ResourceID: 1,
		Severity:   "critical",
		Message:    "CPU usage above threshold",
		IncidentDetails: map[string]interface{}{
			"cpu": 97.5,
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	resolved, err := c.Alerts().Resolve(ctx, a.ID)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Alert %d is %s\n", resolved.ID, resolved.Status)
}

// ExampleMetricsService_Get demonstrates fetching metrics for one resource
func ExampleMetricsService_Get() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8000",
	})

	metrics, err := c.Metrics().Get(context.Background(), "i-0abcd1234efgh5678")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Got %d metric points\n", len(metrics.Metrics))
}
