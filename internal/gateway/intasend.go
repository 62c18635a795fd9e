package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"go.uber.org/zap"
)

type intaSendClient struct {
	cfg        utils.IntaSendConfig
	httpClient *http.Client
	log        *zap.Logger
}

func NewIntaSendClient(cfg utils.IntaSendConfig, log *zap.Logger) Client {
	return &intaSendClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log.With(zap.String("gateway", "intasend")),
	}
}

func (c *intaSendClient) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	payload := map[string]any{
		"public_key": c.cfg.PublishableKey,
		"amount":     req.Amount,
		"currency":   req.Currency,
		"email":      req.Email,
		"api_ref":    req.Reference,
		"comment":    req.Description,
	}
	if req.Phone != "" {
		payload["phone_number"] = req.Phone
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal intasend checkout: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/checkout/", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build intasend checkout request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("IntaSend checkout request failed", zap.Error(err), zap.String("reference", req.Reference))
		return nil, fmt.Errorf("intasend checkout: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read intasend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("IntaSend checkout rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("reference", req.Reference),
		)
		return nil, fmt.Errorf("intasend checkout returned status %d", resp.StatusCode)
	}

	var parsed struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode intasend response: %w", err)
	}

	c.log.Info("IntaSend checkout created",
		zap.String("reference", req.Reference),
		zap.String("provider_ref", parsed.ID),
	)

	return &CheckoutResult{
		RedirectURL: parsed.URL,
		ProviderRef: parsed.ID,
		Raw:         raw,
	}, nil
}
