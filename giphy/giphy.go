// Package giphy fetches random GIFs for the assistant's lighter moments.
package giphy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const defaultBaseURL = "https://api.giphy.com"

type randomResponse struct {
	Data struct {
		ImageURL string `json:"image_url"`
	} `json:"data"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	tag        string
}

func NewClient(apiKey, tag string) *Client {
	return &Client{
		httpClient: http.DefaultClient,
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		tag:        tag,
	}
}

// WithBaseURL points the client at a different endpoint. Used in tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// Random returns the image URL of a random G-rated GIF for the configured tag.
func (c *Client) Random(ctx context.Context) (string, error) {
	endpoint := fmt.Sprintf("%s/v1/gifs/random?api_key=%s&tag=%s&rating=G",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(c.tag))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("giphy request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("giphy request: status %d", res.StatusCode)
	}

	var decoded randomResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("giphy response: %w", err)
	}
	return decoded.Data.ImageURL, nil
}
