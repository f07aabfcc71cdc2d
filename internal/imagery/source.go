package imagery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Source hands out the raw bytes of one random image per call.
type Source interface {
	Random(ctx context.Context) ([]byte, error)
}

// DogCEO fetches random dog photos from the dog.ceo API.
type DogCEO struct {
	Endpoint string
	Client   *http.Client
}

type randomImageResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// NewDogCEO returns a client for endpoint. A zero timeout means none.
func NewDogCEO(endpoint string, timeout time.Duration) *DogCEO {
	return &DogCEO{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: timeout},
	}
}

func (d *DogCEO) Random(ctx context.Context) ([]byte, error) {
	body, err := d.get(ctx, d.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch random image URL: %w", err)
	}

	var payload randomImageResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode image API response: %w", err)
	}
	if payload.Status != "" && payload.Status != "success" {
		return nil, fmt.Errorf("image API returned status %q: %s", payload.Status, payload.Message)
	}
	if payload.Message == "" {
		return nil, fmt.Errorf("image API response has no image URL")
	}

	data, err := d.get(ctx, payload.Message)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", payload.Message, err)
	}
	return data, nil
}

func (d *DogCEO) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status: %s (code: %d)", resp.Status, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
