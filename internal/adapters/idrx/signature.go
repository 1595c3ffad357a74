package idrx

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"
)

// CreateSignature computes the gateway's request signature: an HMAC-SHA256
// keyed with the base64-decoded API secret over the timestamp, HTTP method,
// request path (including query), and the raw body when one is present, in
// that order. The digest is base64url-encoded without padding.
func CreateSignature(method, path, body, timestamp, secret string) (string, error) {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return "", fmt.Errorf("invalid gateway secret: %w", err)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(timestamp))
	mac.Write([]byte(method))
	mac.Write([]byte(path))
	if body != "" {
		mac.Write([]byte(body))
	}

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil)), nil
}

// GenerateTimestamp returns the current unix time in seconds, as the gateway
// expects it in the idrx-api-ts header.
func GenerateTimestamp() string {
	return strconv.FormatInt(time.Now().Unix(), 10)
}
