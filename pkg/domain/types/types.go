package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	BotToken      string
	WebhookSecret string
	ChannelID     string
	DeliveryID    string
	RequestID     string
	BranchName    string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

// IsConfigured reports whether a webhook secret has been set. When no secret
// is configured, signature verification is bypassed entirely. This is an
// explicit trade-off for local and trial setups, not an accident: anyone who
// can reach the endpoint can then submit events.
func (x WebhookSecret) IsConfigured() bool {
	return x != ""
}

func (x WebhookSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x WebhookSecret) String() string {
	return "***********"
}

func (x BotToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x BotToken) String() string {
	return "***********"
}
