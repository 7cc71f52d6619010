package webapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Cafe mirrors the API's wire shape. The webapp keeps its own copy so it
// stays a plain HTTP consumer of the API, like any external client.
type Cafe struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	MapURL       string  `json:"map_url"`
	ImgURL       string  `json:"img_url"`
	Location     string  `json:"location"`
	HasSockets   bool    `json:"has_sockets"`
	HasToilet    bool    `json:"has_toilet"`
	HasWifi      bool    `json:"has_wifi"`
	CanTakeCalls bool    `json:"can_take_calls"`
	Seats        *string `json:"seats"`
	CoffeePrice  *string `json:"coffee_price"`
}

type cafePayload struct {
	Name         string `json:"name"`
	MapURL       string `json:"map_url"`
	ImgURL       string `json:"img_url"`
	Location     string `json:"location"`
	HasSockets   bool   `json:"has_sockets"`
	HasToilet    bool   `json:"has_toilet"`
	HasWifi      bool   `json:"has_wifi"`
	CanTakeCalls bool   `json:"can_take_calls"`
	Seats        string `json:"seats"`
	CoffeePrice  string `json:"coffee_price"`
}

// Client calls the cafe API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListCafes(ctx context.Context) ([]Cafe, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/cafes", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch cafes: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch cafes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch cafes: unexpected status %d", resp.StatusCode)
	}

	var cafes []Cafe
	if err := json.NewDecoder(resp.Body).Decode(&cafes); err != nil {
		return nil, fmt.Errorf("decode cafes: %w", err)
	}
	return cafes, nil
}

func (c *Client) AddCafe(ctx context.Context, p cafePayload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode cafe: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/add_cafe", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("add cafe: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("add cafe: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var apiErr struct {
			Description string `json:"description"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Description != "" {
			return fmt.Errorf("cafe API: %s", apiErr.Description)
		}
		return fmt.Errorf("cafe API: unexpected status %d", resp.StatusCode)
	}
	return nil
}
