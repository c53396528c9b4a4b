package githubhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

const signaturePrefix = "sha256="

var ErrSignatureMalformed = errors.New("signature header must be sha256=<hex digest>")

// ComputeSignature renders the GitHub sha256= prefixed HMAC in hex form.
func ComputeSignature(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// checkSignatureHeader reports whether header has the sha256=<hex> shape,
// without looking at the digest value.
func checkSignatureHeader(header string) error {
	digest, ok := strings.CutPrefix(header, signaturePrefix)
	if !ok || len(digest) != sha256.Size*2 {
		return ErrSignatureMalformed
	}
	if _, err := hex.DecodeString(digest); err != nil {
		return ErrSignatureMalformed
	}
	return nil
}

// VerifySignature checks header against the HMAC of the exact body bytes.
// It fails closed: an empty secret or a malformed header is never valid.
func VerifySignature(secret string, body []byte, header string) bool {
	if secret == "" {
		return false
	}
	if err := checkSignatureHeader(header); err != nil {
		return false
	}

	expected := ComputeSignature(secret, body)
	return hmac.Equal([]byte(expected), []byte(header))
}
