package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// WebAppClient mirrors order events to the external web application. Calls
// are best-effort: the short timeout keeps them from delaying the primary
// state change, and callers swallow the returned error.
type WebAppClient struct {
	baseURL     string
	tokenSecret string
	client      *http.Client
}

func NewWebAppClient(baseURL, tokenSecret string) *WebAppClient {
	return &WebAppClient{
		baseURL:     baseURL,
		tokenSecret: tokenSecret,
		client:      &http.Client{Timeout: 2 * time.Second},
	}
}

func (c *WebAppClient) NotifyOrder(ctx context.Context, orderID, status string) error {
	return c.post(ctx, c.baseURL+"/api/notify", map[string]string{
		"order_id": orderID,
		"status":   status,
	})
}

func (c *WebAppClient) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	return c.post(ctx, fmt.Sprintf("%s/api/orders/%s/status", c.baseURL, orderID), map[string]string{
		"status": status,
	})
}

func (c *WebAppClient) post(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.tokenSecret != "" {
		token, err := c.serviceToken()
		if err != nil {
			return fmt.Errorf("sign service token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		out, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status: %d, body: %s", resp.StatusCode, string(out))
	}

	return nil
}

// serviceToken mints a short-lived HS256 token the webapp can verify with
// the shared secret. The bot never parses tokens, only issues them.
func (c *WebAppClient) serviceToken() (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "orderbot",
		"exp": jwt.NewNumericDate(time.Now().Add(2 * time.Minute)),
	})
	return token.SignedString([]byte(c.tokenSecret))
}
