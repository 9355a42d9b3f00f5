package saas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrUnauthorized means the bearer token was rejected; the user has to go
// back through SSO.
var ErrUnauthorized = errors.New("token rejected by access service")

// ErrNoCredits is the distinguished "402" status: the balance is exhausted
// and the user must be sent to the purchase page instead of generating.
var ErrNoCredits = errors.New("no credits remaining")

// Access is the verify-endpoint payload. A nil CreditsRemaining means the
// plan is not metered.
type Access struct {
	HasAccess        bool    `json:"hasAccess"`
	AccessType       string  `json:"accessType"`
	Email            string  `json:"email"`
	TrialExpiresAt   *string `json:"trialExpiresAt"`
	CreditsRemaining *int    `json:"creditsRemaining"`
}

// CreditBalance is the use-credit endpoint payload.
type CreditBalance struct {
	CreditsRemaining int `json:"creditsRemaining"`
}

// Client talks to the access/credit service for one registered app.
type Client struct {
	baseURL    string
	appSlug    string
	httpClient *http.Client
}

func NewClient(baseURL, appSlug string) *Client {
	return &Client{
		baseURL: baseURL,
		appSlug: appSlug,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Verify checks the bearer token and returns the access payload.
func (c *Client) Verify(ctx context.Context, token string) (*Access, error) {
	req, err := http.NewRequestWithContext(ctx, "GET",
		fmt.Sprintf("%s/api/apps/%s/verify", c.baseURL, c.appSlug), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("verify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("access service error: status %d", resp.StatusCode)
	}

	var access Access
	if err := json.NewDecoder(resp.Body).Decode(&access); err != nil {
		return nil, err
	}
	if !access.HasAccess {
		return nil, ErrUnauthorized
	}

	return &access, nil
}

// UseCredit deducts one credit after a successful generation and returns
// the new balance.
func (c *Client) UseCredit(ctx context.Context, token string) (*CreditBalance, error) {
	req, err := http.NewRequestWithContext(ctx, "POST",
		fmt.Sprintf("%s/api/apps/%s/use-credit", c.baseURL, c.appSlug), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("use-credit request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired {
		return nil, ErrNoCredits
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("access service error: status %d", resp.StatusCode)
	}

	var balance CreditBalance
	if err := json.NewDecoder(resp.Body).Decode(&balance); err != nil {
		return nil, err
	}

	return &balance, nil
}

// LoginURL is the SSO entry point the user is sent to when no valid token
// exists.
func (c *Client) LoginURL(redirectURL string) string {
	return fmt.Sprintf("%s/auth/app-login?appSlug=%s&redirectUrl=%s",
		c.baseURL, url.QueryEscape(c.appSlug), url.QueryEscape(redirectURL))
}

// PurchaseURL is where an out-of-credits user is redirected.
func (c *Client) PurchaseURL() string {
	return fmt.Sprintf("%s/pricing?appSlug=%s", c.baseURL, url.QueryEscape(c.appSlug))
}
