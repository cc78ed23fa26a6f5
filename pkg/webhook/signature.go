/*
Package webhook helps consumers of SoroScan webhook deliveries authenticate
incoming payloads. Every delivery is signed with the subscription secret using
HMAC-SHA256, the hex digest being sent in the SignatureHeader header.
*/
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureHeader is the HTTP header carrying a delivery's payload signature.
const SignatureHeader = "X-Soroscan-Signature"

// Sign computes the hex-encoded HMAC-SHA256 signature of a delivery payload
// under the given subscription secret.
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature authenticates the payload under the given
// secret. The comparison is constant-time.
func Verify(secret string, payload []byte, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hmac.Equal(got, mac.Sum(nil))
}
