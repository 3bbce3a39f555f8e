package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Webhook signature headers. The provider observed in production sends no
// signature at all, so verification is opt-in hardening: enabled only when
// a shared secret is configured.
const (
	SignatureHeader = "X-Webhook-Signature"
	TimestampHeader = "X-Webhook-Timestamp"
)

// DefaultSignatureMaxAge bounds the replay window for signed deliveries.
const DefaultSignatureMaxAge = 5 * time.Minute

// SignPayload computes the signature for payload at ts. Format follows the
// common HMAC-SHA256 over "timestamp.payload" scheme.
func SignPayload(secret string, payload []byte, ts time.Time) string {
	h := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(h, "%d.%s", ts.Unix(), payload)
	return hex.EncodeToString(h.Sum(nil))
}

// VerifySignature checks the signature headers of an inbound webhook
// request against the shared secret. Comparison is constant time and the
// timestamp is bounded by maxAge to prevent replays.
func VerifySignature(secret string, payload []byte, header http.Header, maxAge time.Duration) error {
	signature := header.Get(SignatureHeader)
	if signature == "" {
		return fmt.Errorf("%w: signature header missing", ErrInvalidSignature)
	}

	ts, err := strconv.ParseInt(header.Get(TimestampHeader), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid timestamp header", ErrInvalidSignature)
	}

	if maxAge > 0 {
		age := time.Since(time.Unix(ts, 0))
		if age > maxAge {
			return fmt.Errorf("%w: timestamp too old", ErrInvalidSignature)
		}
		if age < -time.Minute {
			return fmt.Errorf("%w: timestamp in the future", ErrInvalidSignature)
		}
	}

	expected := SignPayload(secret, payload, time.Unix(ts, 0))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("%w: signature mismatch", ErrInvalidSignature)
	}
	return nil
}
