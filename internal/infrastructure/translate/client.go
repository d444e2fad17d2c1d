// Package translate wraps the public Google Translate endpoint.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dietplanner/backend/pkg/errors"
)

const defaultBaseURL = "https://translate.googleapis.com"

// Client translates text via the unauthenticated gtx endpoint.
// It implements ports.Translator.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewClientWithBaseURL creates a client against a custom endpoint (tests)
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// Translate converts text from source language to target language.
// Source may be "auto" for language detection.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", source)
	params.Set("tl", target)
	params.Set("dt", "t")
	params.Set("q", text)

	endpoint := c.baseURL + "/translate_a/single?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.NewExternalError("translate", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewExternalError("translate",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	// Response is a nested array: [[["translated","original",...],...],...]
	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errors.NewExternalError("translate", err)
	}
	if len(payload) == 0 {
		return "", errors.NewExternalError("translate", fmt.Errorf("empty response"))
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", errors.NewExternalError("translate", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			continue
		}
		sb.WriteString(part)
	}
	return sb.String(), nil
}
