// Package geo implements the address validator port against the campus
// geocoding service.
package geo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"
)

const requestTimeout = 5 * time.Second

// Client resolves free-form address lines to normalized lines and grid
// locations over the geocoding service's HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type geocodeRequest struct {
	Line string `json:"line"`
}

type geocodeResponse struct {
	Line string `json:"line"`
	X    int16  `json:"x"`
	Y    int16  `json:"y"`
}

// Validate sends the address line to the geocoding service and rebuilds the
// address from the normalized response. An address the service cannot
// resolve yields a validation error.
func (c *Client) Validate(ctx context.Context, address kernel.Address) (kernel.Address, error) {
	body, err := json.Marshal(geocodeRequest{Line: address.Line()})
	if err != nil {
		return kernel.Address{}, fmt.Errorf("marshal geocode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/geocode", bytes.NewReader(body))
	if err != nil {
		return kernel.Address{}, fmt.Errorf("create geocode request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return kernel.Address{}, fmt.Errorf("call geocode service: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnprocessableEntity, http.StatusNotFound:
		return kernel.Address{}, errs.NewValueIsInvalidError("address")
	default:
		return kernel.Address{}, fmt.Errorf("geocode service returned status %d", resp.StatusCode)
	}

	var result geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return kernel.Address{}, fmt.Errorf("decode geocode response: %w", err)
	}

	location, err := kernel.NewLocation(kernel.Coordinate(result.X), kernel.Coordinate(result.Y))
	if err != nil {
		return kernel.Address{}, errs.NewValueIsInvalidErrorWithCause("address", err)
	}
	return kernel.NewAddress(result.Line, location)
}
