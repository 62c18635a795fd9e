package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"go.uber.org/zap"
)

type mpesaClient struct {
	cfg        utils.MpesaConfig
	httpClient *http.Client
	log        *zap.Logger
}

func NewMpesaClient(cfg utils.MpesaConfig, log *zap.Logger) Client {
	return &mpesaClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log.With(zap.String("gateway", "mpesa")),
	}
}

func (c *mpesaClient) token(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/oauth/v1/generate?grant_type=client_credentials", nil)
	if err != nil {
		return "", fmt.Errorf("build mpesa token request: %w", err)
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("mpesa token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mpesa token request returned status %d", resp.StatusCode)
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode mpesa token response: %w", err)
	}

	return parsed.AccessToken, nil
}

// Checkout issues an STK push. The customer confirms on their phone and the
// outcome arrives on the configured callback URL.
func (c *mpesaClient) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	token, err := c.token(ctx)
	if err != nil {
		c.log.Error("M-Pesa auth failed", zap.Error(err))
		return nil, err
	}

	timestamp := time.Now().Format("20060102150405")
	password := base64.StdEncoding.EncodeToString(
		[]byte(c.cfg.ShortCode + c.cfg.PassKey + timestamp))

	// STK push amounts are whole shillings.
	payload := map[string]any{
		"BusinessShortCode": c.cfg.ShortCode,
		"Password":          password,
		"Timestamp":         timestamp,
		"TransactionType":   "CustomerPayBillOnline",
		"Amount":            int64(math.Ceil(req.Amount)),
		"PartyA":            req.Phone,
		"PartyB":            c.cfg.ShortCode,
		"PhoneNumber":       req.Phone,
		"CallBackURL":       c.cfg.CallbackURL,
		"AccountReference":  req.Reference,
		"TransactionDesc":   req.Description,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal stk push: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/mpesa/stkpush/v1/processrequest", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build stk push request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("STK push request failed", zap.Error(err), zap.String("reference", req.Reference))
		return nil, fmt.Errorf("mpesa stk push: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read stk push response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Error("STK push rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("reference", req.Reference),
		)
		return nil, fmt.Errorf("mpesa stk push returned status %d", resp.StatusCode)
	}

	var parsed struct {
		CheckoutRequestID string `json:"CheckoutRequestID"`
		ResponseCode      string `json:"ResponseCode"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode stk push response: %w", err)
	}

	if parsed.ResponseCode != "0" {
		return nil, fmt.Errorf("mpesa stk push rejected with code %s", parsed.ResponseCode)
	}

	c.log.Info("STK push sent",
		zap.String("reference", req.Reference),
		zap.String("checkout_request_id", parsed.CheckoutRequestID),
	)

	return &CheckoutResult{
		ProviderRef: parsed.CheckoutRequestID,
		Raw:         raw,
	}, nil
}
