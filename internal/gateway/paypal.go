package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"go.uber.org/zap"
)

type payPalClient struct {
	cfg        utils.PayPalConfig
	httpClient *http.Client
	log        *zap.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewPayPalClient(cfg utils.PayPalConfig, log *zap.Logger) Client {
	return &payPalClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log.With(zap.String("gateway", "paypal")),
	}
}

// token fetches a client-credentials access token, caching it until shortly
// before expiry.
func (c *payPalClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build paypal token request: %w", err)
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.Secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("paypal token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paypal token request returned status %d", resp.StatusCode)
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode paypal token response: %w", err)
	}

	c.accessToken = parsed.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(parsed.ExpiresIn-60) * time.Second)
	return c.accessToken, nil
}

func (c *payPalClient) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	token, err := c.token(ctx)
	if err != nil {
		c.log.Error("PayPal auth failed", zap.Error(err))
		return nil, err
	}

	// custom_id round-trips through the webhook and is how we find the
	// payment again.
	payload := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{{
			"custom_id":   req.Reference,
			"description": req.Description,
			"amount": map[string]string{
				"currency_code": req.Currency,
				"value":         strconv.FormatFloat(req.Amount, 'f', 2, 64),
			},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal paypal order: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v2/checkout/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build paypal order request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("PayPal order request failed", zap.Error(err), zap.String("reference", req.Reference))
		return nil, fmt.Errorf("paypal create order: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read paypal response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("PayPal order rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("reference", req.Reference),
		)
		return nil, fmt.Errorf("paypal create order returned status %d", resp.StatusCode)
	}

	var parsed struct {
		ID    string `json:"id"`
		Links []struct {
			Href string `json:"href"`
			Rel  string `json:"rel"`
		} `json:"links"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode paypal response: %w", err)
	}

	var approveURL string
	for _, link := range parsed.Links {
		if link.Rel == "approve" {
			approveURL = link.Href
			break
		}
	}

	c.log.Info("PayPal order created",
		zap.String("reference", req.Reference),
		zap.String("order_id", parsed.ID),
	)

	return &CheckoutResult{
		RedirectURL: approveURL,
		ProviderRef: parsed.ID,
		Raw:         raw,
	}, nil
}
