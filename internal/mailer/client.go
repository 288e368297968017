package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client talks to the transactional mail provider's v3.1 send endpoint over
// HTTP with Basic Auth (public key / private key).
type Client struct {
	baseURL     string
	publicKey   string
	privateKey  string
	senderEmail string
	senderName  string
	appLink     string
	httpClient  *http.Client
}

// Config configures the mail client
type Config struct {
	BaseURL     string
	PublicKey   string
	PrivateKey  string
	SenderEmail string
	SenderName  string
	AppLink     string
}

// NewClient constructs a mail client
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		publicKey:   cfg.PublicKey,
		privateKey:  cfg.PrivateKey,
		senderEmail: cfg.SenderEmail,
		senderName:  cfg.SenderName,
		appLink:     cfg.AppLink,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type address struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

type message struct {
	From     address   `json:"From"`
	To       []address `json:"To"`
	Subject  string    `json:"Subject"`
	HTMLPart string    `json:"HTMLPart"`
	CustomID string    `json:"CustomID"`
}

type sendRequest struct {
	Messages []message `json:"Messages"`
}

// SendReminder sends the daily gratitude reminder to one recipient. Each
// message carries a fresh CustomID so the provider can track it. Any status
// other than 200 is an error carrying the response body.
func (c *Client) SendReminder(ctx context.Context, toEmail, username string) error {
	subject := fmt.Sprintf("IMPORTANT: Daily Gratitude Form Fill Reminder for %s", username)
	htmlPart := fmt.Sprintf(
		"<h3>Hey %s, did you fill the DAILY GRATITUDE FORM today?</h3>"+
			"<p><a href=%q>Open your gratitude journal</a></p>"+
			"<p>Sweet regards,<br/>%s</p>",
		username, c.appLink, c.senderName,
	)

	payload := sendRequest{
		Messages: []message{{
			From:     address{Email: c.senderEmail, Name: c.senderName},
			To:       []address{{Email: toEmail}},
			Subject:  subject,
			HTMLPart: htmlPart,
			CustomID: uuid.NewString(),
		}},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v3.1/send", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.publicKey, c.privateKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mail provider returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
