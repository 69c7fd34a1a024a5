package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(payload, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "test-secret"
	sig := sign("order_abc|pay_def", secret)

	assert.True(t, VerifySignature("order_abc", "pay_def", sig, secret))
}

func TestVerifySignature_Rejects(t *testing.T) {
	secret := "test-secret"
	sig := sign("order_abc|pay_def", secret)

	assert.False(t, VerifySignature("order_abc", "pay_def", sig, "other-secret"))
	assert.False(t, VerifySignature("order_abc", "pay_other", sig, secret))
	assert.False(t, VerifySignature("order_abc", "pay_def", "not-a-signature", secret))
	assert.False(t, VerifySignature("order_abc", "pay_def", "", secret))
}
