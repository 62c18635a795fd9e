package request

import "encoding/json"

type InitiatePaymentRequest struct {
	BookingID   *string `json:"booking_id,omitempty" validate:"omitempty,uuid4"`
	EnquiryID   *string `json:"enquiry_id,omitempty" validate:"omitempty,uuid4"`
	Gateway     string  `json:"gateway" validate:"required,oneof=intasend paypal mpesa"`
	PaymentType string  `json:"payment_type" validate:"required,oneof=full deposit"`
	Amount      float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Phone       string  `json:"phone,omitempty"`
	Currency    string  `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// PayPalWebhookRequest is the envelope PayPal posts to our webhook endpoint.
type PayPalWebhookRequest struct {
	EventType string `json:"event_type"`
	Resource  struct {
		CustomID string `json:"custom_id"`
		Status   string `json:"status"`
	} `json:"resource"`
	Raw json.RawMessage `json:"-"`
}

// MpesaCallbackRequest is the STK push result Safaricom posts back.
type MpesaCallbackRequest struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
		} `json:"stkCallback"`
	} `json:"Body"`
	Raw json.RawMessage `json:"-"`
}

// IntaSendWebhookRequest is the payment state notification from IntaSend.
type IntaSendWebhookRequest struct {
	InvoiceID string          `json:"invoice_id"`
	APIRef    string          `json:"api_ref"`
	State     string          `json:"state"`
	Value     float64         `json:"value,omitempty"`
	Raw       json.RawMessage `json:"-"`
}
