package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureHeader is the HTTP header a delivery carries its HMAC
// signature in, so a consumer can verify the payload was not tampered
// with in transit and genuinely originated from this instance.
const SignatureHeader = "X-Tracker-Signature"

// Sign computes the hex-encoded HMAC-SHA256 of body under secret, the
// same primitive pkg/services' import/export signing uses — the
// webhook transport and the export dump share one authenticity mechanism
// rather than inventing a second.
func Sign(secret []byte, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature is the correct HMAC-SHA256 of body
// under secret, using a constant-time comparison to avoid leaking timing
// information about how many leading bytes matched.
func Verify(secret []byte, body []byte, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), expected)
}
