package firewall

import (
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultProbeURL is a known-reachable endpoint used only for a
	// boolean reachability signal.
	DefaultProbeURL = "https://api.github.com/zen"

	// DefaultProbeTimeout bounds the probe so verification can never hang
	// the reset.
	DefaultProbeTimeout = 5 * time.Second
)

// Probe issues one bounded HTTP GET against url and reports whether it got
// a non-error response.
func Probe(url string, timeout time.Duration) error {
	if url == "" {
		url = DefaultProbeURL
	}
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("probe returned %s", resp.Status)
	}
	return nil
}
