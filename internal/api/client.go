// Package api fetches the initial user list from the remote directory
// endpoint. The endpoint is read-only: nothing is ever written back.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/logging"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/models"
)

// Client performs the one startup request against the placeholder API.
type Client struct {
	endpoint string
	http     *http.Client
	log      logging.Logger
}

func NewClient(endpoint string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     &http.Client{Timeout: timeout},
		log:      log,
	}
}

// FetchUsers requests the full user list. There is no retry and no
// pagination; a failed fetch is reported once and the caller continues
// with an empty set.
func (c *Client) FetchUsers(ctx context.Context) ([]models.User, error) {
	url := c.endpoint + "/users"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch users: unexpected status %s", resp.Status)
	}

	var users []models.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	c.log.Debug(ctx, "users fetched", "url", url, "count", len(users), "elapsed", time.Since(start))
	return users, nil
}
