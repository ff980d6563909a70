package discord

import (
	"fmt"
	"time"

	"github.com/m-mizutani/pushrelay/pkg/domain/model"
)

const (
	colorGreen  = 0x2ECC71
	colorOrange = 0xE67E22
	colorRed    = 0xE74C3C
	colorGold   = 0xF1C40F
	colorBlue   = 0x3498DB
)

// The reply builders are pure so they can be tested without a live session.

func buildStatusMessage(queueSize int, channelID string, latency time.Duration) *model.Message {
	return &model.Message{
		Title: "✅ Bot running",
		Color: colorGreen,
		Fields: []model.MessageField{
			{Name: "Configured channel", Value: channelID, Inline: true},
			{Name: "Latency", Value: fmt.Sprintf("%dms", latency.Milliseconds()), Inline: true},
			{Name: "Queue", Value: fmt.Sprintf("%d items", queueSize), Inline: true},
		},
	}
}

func buildQueueMessage(queueSize int) *model.Message {
	msg := &model.Message{
		Title: "📊 Queue state",
		Fields: []model.MessageField{
			{Name: "Items in queue", Value: fmt.Sprintf("%d", queueSize)},
		},
	}
	if queueSize > 0 {
		msg.Description = fmt.Sprintf("⏳ Processing %d event(s)...", queueSize)
		msg.Color = colorOrange
	} else {
		msg.Description = "✅ Queue empty"
		msg.Color = colorGreen
	}
	return msg
}

func buildSimulateMessage(queueSize int) *model.Message {
	return &model.Message{
		Title:       "🧪 Simulated push",
		Description: "Synthetic push event added to the queue.",
		Color:       colorGold,
		Fields: []model.MessageField{
			{Name: "Status", Value: "✅ queued for delivery"},
			{Name: "Queue size", Value: fmt.Sprintf("%d items", queueSize)},
		},
	}
}

func buildChangelogMessage() *model.Message {
	return &model.Message{
		Title:       "📋 Changelog",
		Description: "Latest updates and features",
		Color:       colorBlue,
		Fields: []model.MessageField{
			{
				Name:  "v1.0.0",
				Value: "✅ GitHub push webhooks\n✅ Embed notifications\n✅ Delivery queue\n✅ Operator commands\n✅ Structured logs",
			},
			{
				Name:  "Available commands",
				Value: "!status - Bot status\n!setup - Webhook instructions\n!simulate - Synthetic push\n!queue - Queue state\n!health - Health check\n!changelog - This message",
			},
		},
		Footer: "Relaying GitHub pushes to this server",
	}
}

func buildSetupMessage() *model.Message {
	return &model.Message{
		Title: "🔧 GitHub webhook configuration",
		Color: colorBlue,
		Fields: []model.MessageField{
			{Name: "1. Open your repository", Value: "GitHub → Settings → Webhooks → Add webhook"},
			{Name: "2. Payload URL", Value: "`https://<your-host>/github-webhook`"},
			{Name: "3. Content type", Value: "`application/json`", Inline: true},
			{Name: "4. Secret", Value: "The value of your webhook secret", Inline: true},
			{Name: "5. Events", Value: "Select: `Just the push event`"},
		},
	}
}
