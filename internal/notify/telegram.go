// Package notify delivers new-job alerts over the Telegram Bot API. It runs
// out-of-process from the engine and shares only the manifest and the
// dedupe table with it.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

type Client struct {
	Token   string
	ChatID  string
	BaseURL string // overridable for tests
	HC      *http.Client
}

func NewClient(token, chatID string) *Client {
	return &Client{
		Token:   token,
		ChatID:  chatID,
		BaseURL: defaultBaseURL,
		HC:      &http.Client{Timeout: 15 * time.Second},
	}
}

type message struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// Send delivers text as Markdown, retrying once as plain text if Telegram
// rejects the formatting.
func (c *Client) Send(ctx context.Context, text string) error {
	if err := c.send(ctx, message{ChatID: c.ChatID, Text: text, ParseMode: "Markdown"}); err == nil {
		return nil
	}
	return c.send(ctx, message{ChatID: c.ChatID, Text: text})
}

func (c *Client) send(ctx context.Context, msg message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", base, c.Token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	hc := c.HC
	if hc == nil {
		hc = http.DefaultClient
	}
	res, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram send: status %d", res.StatusCode)
	}
	return nil
}
