// Package instagram sends direct-message replies through the Meta Graph
// API. Delivery is best effort: the bot never retries a failed send.
package instagram

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrNoAccessToken is returned when neither the saved bot settings nor
// the environment provide a page access token.
var ErrNoAccessToken = errors.New("missing access token")

// TokenSource yields the page access token to use for a send; the store's
// saved bot settings take precedence over the configured one.
type TokenSource func() string

type Client struct {
	baseURL string
	token   TokenSource
	http    *http.Client
}

func New(baseURL string, token TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type messagePayload struct {
	Recipient recipient `json:"recipient"`
	Message   message   `json:"message"`
}

type recipient struct {
	ID string `json:"id"`
}

type message struct {
	Text string `json:"text"`
}

// Notify sends text to the given recipient id.
func (c *Client) Notify(recipientID, text string) error {
	token := c.token()
	if token == "" {
		return ErrNoAccessToken
	}

	body, err := json.Marshal(messagePayload{
		Recipient: recipient{ID: recipientID},
		Message:   message{Text: text},
	})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	endpoint := fmt.Sprintf("%s/me/messages?access_token=%s", c.baseURL, url.QueryEscape(token))

	resp, err := c.http.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("graph api returned %d: %s", resp.StatusCode, apiErr)
	}

	return nil
}
