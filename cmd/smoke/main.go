// Command smoke performs a quick endpoint check against a running
// gallery backend and reports per-endpoint status.
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultTimeout = 30 * time.Second

// endpoints probed in order. The photos endpoint is listed last because
// it fans out to the external search service and is the slowest.
var endpoints = []string{
	"/",
	"/api/hello",
	"/api/sim-info",
	"/test",
	"/stats",
	"/healthz",
	"/api/omsk/photos",
}

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8000", "Base URL of the service")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	client := &http.Client{Timeout: *timeout}

	failed := 0
	for _, path := range endpoints {
		if err := check(client, *baseURL+path); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %-20s %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("OK   %s\n", path)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d endpoints failed\n", failed, len(endpoints))
		os.Exit(1)
	}
}

func check(client *http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %s", resp.Status)
	}
	if len(body) == 0 {
		return fmt.Errorf("empty body")
	}
	return nil
}
