// Package payment implements the gateway signature check that gates every
// payment confirmation.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature reports whether provided matches the HMAC-SHA256 hex digest
// of "orderID|paymentID" keyed with the gateway secret. The comparison is
// constant-time; this check gates a financial confirmation. The secret must
// never be logged by callers.
func VerifySignature(orderID, paymentID, provided, secret string) bool {
	if orderID == "" || paymentID == "" || provided == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(provided))
}
