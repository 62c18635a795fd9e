// Package gateway holds thin HTTP clients for the external payment providers.
// Each client exposes a single Checkout call. Reconciliation happens later via
// provider webhooks, not through these clients.
package gateway

import (
	"context"
	"encoding/json"
)

// CheckoutRequest carries everything a provider needs to start a payment.
// Reference is our own payment reference and doubles as the correlation key
// the webhook hands back.
type CheckoutRequest struct {
	Reference   string
	Amount      float64
	Currency    string
	Email       string
	Phone       string
	Description string
}

// CheckoutResult is the provider's answer to an initiation call.
type CheckoutResult struct {
	// RedirectURL is where the customer completes the payment. Empty for
	// M-Pesa, which pushes a prompt to the customer's phone instead.
	RedirectURL string

	// ProviderRef is the provider-side identifier for this checkout, used to
	// match the later webhook (M-Pesa CheckoutRequestID, PayPal order ID).
	ProviderRef string

	// Raw is the provider's response body, persisted for audit.
	Raw json.RawMessage
}

type Client interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
}

// Set bundles one client per supported provider.
type Set struct {
	IntaSend Client
	PayPal   Client
	Mpesa    Client
}
