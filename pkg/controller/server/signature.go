package server

import (
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/pushrelay/pkg/domain/types"
)

// VerifySignature checks the X-Hub-Signature-256 header value against the
// raw request body. The expected value is "sha256=" followed by the hex
// HMAC-SHA256 of the body keyed with the shared secret; the comparison is
// constant time. When no secret is configured, verification is bypassed and
// any payload is accepted (see types.WebhookSecret.IsConfigured).
func VerifySignature(body []byte, secret types.WebhookSecret, signature string) bool {
	if !secret.IsConfigured() {
		return true
	}
	return github.ValidateSignature(signature, body, []byte(secret)) == nil
}
