package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"collection-backend/internal/config"
	"collection-backend/internal/shared/apperror"
)

// Session is the result of exchanging a login code with the identity
// provider.
type Session struct {
	OpenID     string `json:"openid"`
	SessionKey string `json:"session_key"`
	UnionID    string `json:"unionid"`
}

// exchangeResponse is the provider's wire format. ErrCode is zero on
// success; error responses still come back with HTTP 200.
type exchangeResponse struct {
	OpenID     string `json:"openid"`
	SessionKey string `json:"session_key"`
	UnionID    string `json:"unionid"`
	ErrCode    int    `json:"errcode"`
	ErrMsg     string `json:"errmsg"`
}

// Exchanger swaps a client-side login code for a provider session.
type Exchanger interface {
	ExchangeCode(ctx context.Context, jsCode string) (*Session, error)
}

// Client calls the external identity provider over HTTP.
type Client struct {
	config     config.OAuthConfig
	httpClient *http.Client
}

func NewClient(cfg config.OAuthConfig) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ExchangeCode performs the jscode2session exchange. Provider-reported
// errors (bad code, rate limit) surface as upstream failures.
func (c *Client) ExchangeCode(ctx context.Context, jsCode string) (*Session, error) {
	params := url.Values{}
	params.Set("appid", c.config.AppID)
	params.Set("secret", c.config.Secret)
	params.Set("js_code", jsCode)
	params.Set("grant_type", "authorization_code")

	reqURL := fmt.Sprintf("%s?%s", c.config.ExchangeURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperror.Upstream("identity provider unavailable", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.Upstream("identity provider unavailable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Upstream("identity provider unavailable", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.Upstream("identity provider unavailable",
			fmt.Errorf("exchange returned status %d", resp.StatusCode))
	}

	var payload exchangeResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperror.Upstream("identity provider unavailable", err)
	}

	if payload.ErrCode != 0 {
		return nil, apperror.Upstream("login code rejected",
			fmt.Errorf("exchange error %d: %s", payload.ErrCode, payload.ErrMsg))
	}

	if payload.OpenID == "" {
		return nil, apperror.Upstream("identity provider unavailable",
			fmt.Errorf("exchange response missing openid"))
	}

	return &Session{
		OpenID:     payload.OpenID,
		SessionKey: payload.SessionKey,
		UnionID:    payload.UnionID,
	}, nil
}
