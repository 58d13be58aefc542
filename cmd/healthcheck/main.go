// main.go
//
// Go replacement for the BibleStudy nodejs/express data backend.
// Copyright (c) 2026 Mykhailo Shershun

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/shershunm/BibleStudy/internal/config"
	"github.com/shershunm/BibleStudy/internal/services"
	"github.com/shershunm/BibleStudy/internal/utils"
)

// Container healthcheck: verifies the API server is reachable over TCP, then
// asks it for its own health report. Exits nonzero when either step fails.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	serverURL := fmt.Sprintf("http://localhost:%s", cfg.Port)

	if err := utils.PingServer(serverURL); err != nil {
		log.Fatalf("Server unreachable: %v", err)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(serverURL + "/api/health")
	if err != nil {
		log.Fatalf("Health request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("Failed to read health response: %v", err)
	}

	var result services.HealthCheckResult
	if err := json.Unmarshal(body, &result); err != nil {
		log.Fatalf("Failed to parse health response: %v", err)
	}

	output, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(output))

	if resp.StatusCode != http.StatusOK || result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
