package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_Valid(t *testing.T) {
	sig := sign("order_123", "pay_456", "topsecret")
	assert.True(t, VerifySignature("order_123", "pay_456", sig, "topsecret"))
}

func TestVerifySignature_SingleCharacterMutations(t *testing.T) {
	const (
		orderID   = "order_MhX2kQ9vYx"
		paymentID = "pay_NkR7wB3tZp"
		secret    = "whsec_kappu"
	)
	sig := sign(orderID, paymentID, secret)
	require.True(t, VerifySignature(orderID, paymentID, sig, secret))

	// Flipping any single character of the order ID, payment ID, or the
	// signature itself must break verification.
	mutate := func(s string, i int) string {
		b := []byte(s)
		if b[i] == 'x' {
			b[i] = 'y'
		} else {
			b[i] = 'x'
		}
		return string(b)
	}

	for i := range orderID {
		assert.False(t, VerifySignature(mutate(orderID, i), paymentID, sig, secret),
			"mutated orderID at %d still verified", i)
	}
	for i := range paymentID {
		assert.False(t, VerifySignature(orderID, mutate(paymentID, i), sig, secret),
			"mutated paymentID at %d still verified", i)
	}
	for i := range sig {
		assert.False(t, VerifySignature(orderID, paymentID, mutate(sig, i), secret),
			"mutated signature at %d still verified", i)
	}
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	sig := sign("order_123", "pay_456", "topsecret")
	assert.False(t, VerifySignature("order_123", "pay_456", sig, "othersecret"))
}

func TestVerifySignature_EmptyInputs(t *testing.T) {
	sig := sign("order_123", "pay_456", "topsecret")

	assert.False(t, VerifySignature("", "pay_456", sig, "topsecret"))
	assert.False(t, VerifySignature("order_123", "", sig, "topsecret"))
	assert.False(t, VerifySignature("order_123", "pay_456", "", "topsecret"))
	assert.False(t, VerifySignature("order_123", "pay_456", sig, ""))
}

func TestVerifySignature_SwappedIDsFail(t *testing.T) {
	// The pipe separator means (a|bc) and (ab|c) must not collide.
	sig := sign("order_a", "bc", "topsecret")
	assert.False(t, VerifySignature("order_ab", "c", sig, "topsecret"))
}
