package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/razorpay/razorpay-go"

	"storefront-api/errs"
	"storefront-api/models"
)

// RazorpayProvider charges through the Razorpay order API.
type RazorpayProvider struct {
	client   *razorpay.Client
	currency string
}

func NewRazorpayProvider(keyID, keySecret, currency string) *RazorpayProvider {
	if currency == "" {
		currency = "INR"
	}
	return &RazorpayProvider{
		client:   razorpay.NewClient(keyID, keySecret),
		currency: currency,
	}
}

// Charge creates a gateway order for the amount. Razorpay wants the smallest
// currency unit, so the amount is converted to paise.
func (p *RazorpayProvider) Charge(ctx context.Context, amount float64, method models.PaymentMethod, orderRef string) (string, error) {
	data := map[string]interface{}{
		"amount":   int64(amount * 100),
		"currency": p.currency,
		"receipt":  "receipt_" + orderRef,
		"notes": map[string]interface{}{
			"method": string(method),
		},
	}

	order, err := p.client.Order.Create(data, nil)
	if err != nil {
		return "", &errs.PaymentError{Method: string(method), Reason: err.Error()}
	}

	id, ok := order["id"].(string)
	if !ok || id == "" {
		return "", &errs.PaymentError{Method: string(method), Reason: "gateway returned no order id"}
	}
	return id, nil
}

// VerifySignature checks the HMAC-SHA256 signature Razorpay sends with a
// completed payment. The signed payload is "<gatewayOrderID>|<paymentID>".
func VerifySignature(gatewayOrderID, paymentID, signature, keySecret string) bool {
	h := hmac.New(sha256.New, []byte(keySecret))
	h.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
