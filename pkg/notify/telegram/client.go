// Package telegram sends alert messages through the Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

const DefaultBaseURL = "https://api.telegram.org"

var ErrMissingToken = errors.New("telegram bot token is required")

// Client implements haccp.Messenger. The bot token is passed per call since
// administrators can change it at runtime.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient() *Client {
	return NewClientWithBaseURL(DefaultBaseURL, &http.Client{})
}

func NewClientWithBaseURL(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

type botUser struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

func (c *Client) methodURL(token, method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.baseURL, token, method)
}

func (c *Client) call(ctx context.Context, token, method string, payload any) (*apiResponse, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	httpMethod := http.MethodGet
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		httpMethod = http.MethodPost
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, c.methodURL(token, method), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", redact(err, token))
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		// the url embeds the token, keep it out of the error
		return nil, fmt.Errorf("telegram %s: %w", method, redact(err, token))
	}
	defer resp.Body.Close()

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("telegram %s: %s: decode response: %w", method, resp.Status, err)
	}

	if resp.StatusCode != http.StatusOK || !decoded.OK {
		return nil, fmt.Errorf("telegram API error: %s: %s", resp.Status, decoded.Description)
	}

	return &decoded, nil
}

func (c *Client) SendMessage(ctx context.Context, token, chatID, text string) error {
	_, err := c.call(ctx, token, "sendMessage", sendMessageRequest{ChatID: chatID, Text: text})
	return err
}

// VerifyBot calls getMe to check that token belongs to a live bot.
func (c *Client) VerifyBot(ctx context.Context, token string) (*models.BotInfo, error) {
	resp, err := c.call(ctx, token, "getMe", nil)
	if err != nil {
		return nil, err
	}

	var user botUser
	if err := json.Unmarshal(resp.Result, &user); err != nil {
		return nil, fmt.Errorf("telegram getMe: decode result: %w", err)
	}

	return &models.BotInfo{
		OK:       true,
		ID:       user.ID,
		Name:     user.FirstName,
		Username: user.Username,
	}, nil
}

func redact(err error, token string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = strings.ReplaceAll(urlErr.URL, token, "<token>")
	}
	return err
}
