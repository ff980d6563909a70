package discord

import (
	"context"
	"fmt"
	"strings"

	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/pushrelay/pkg/domain/interfaces"
	"github.com/m-mizutani/pushrelay/pkg/domain/model"
	"github.com/m-mizutani/pushrelay/pkg/utils/logging"
)

const commandPrefix = "!"

// BindCommands registers the operator command handler. It must be called
// before Open. Commands run inside the session's event loop and only touch
// the use case through its interface, so they share the same queue the
// webhook path feeds.
func (x *Client) BindCommands(uc interfaces.UseCase) {
	x.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot {
			return
		}
		if !strings.HasPrefix(m.Content, commandPrefix) {
			return
		}

		command := strings.TrimPrefix(strings.Fields(m.Content)[0], commandPrefix)
		logger := logging.Default().With(
			slog.String("command", command),
			slog.String("user", m.Author.Username),
		)

		var msg *model.Message
		switch command {
		case "status":
			msg = buildStatusMessage(uc.QueueSize(), string(x.channelID), s.HeartbeatLatency())
		case "queue":
			msg = buildQueueMessage(uc.QueueSize())
		case "health":
			msg = x.buildHealthMessage(s, uc.QueueSize())
		case "setup":
			msg = buildSetupMessage()
		case "changelog":
			msg = buildChangelogMessage()
		case "simulate":
			msg = x.handleSimulate(s, m, uc)
		default:
			return
		}

		if _, err := s.ChannelMessageSendEmbed(m.ChannelID, toEmbed(msg)); err != nil {
			logger.Warn("fail to reply to command", slog.Any("error", err))
			return
		}
		logger.Debug("handled operator command")
	})
}

func (x *Client) handleSimulate(s *discordgo.Session, m *discordgo.MessageCreate, uc interfaces.UseCase) *model.Message {
	perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil || perms&discordgo.PermissionAdministrator == 0 {
		return &model.Message{
			Title:       "Permission denied",
			Description: "Only administrators can simulate push events.",
			Color:       colorRed,
		}
	}

	avatarURL := ""
	if m.Author.Avatar != "" {
		avatarURL = m.Author.AvatarURL("")
	}

	if err := uc.SimulatePush(context.Background(), m.Author.Username, avatarURL); err != nil {
		return &model.Message{
			Title:       "Simulation failed",
			Description: err.Error(),
			Color:       colorRed,
		}
	}

	return buildSimulateMessage(uc.QueueSize())
}

func (x *Client) buildHealthMessage(s *discordgo.Session, queueSize int) *model.Message {
	channelValue := "🔴 not configured"
	if x.channelID != "" {
		if ch, err := s.Channel(string(x.channelID)); err == nil {
			channelValue = fmt.Sprintf("🟢 #%s", ch.Name)
		} else {
			channelValue = "🔴 not found"
		}
	}

	return &model.Message{
		Title: "🏥 Health check",
		Color: colorGreen,
		Fields: []model.MessageField{
			{Name: "Discord", Value: "🟢 connected", Inline: true},
			{Name: "Latency", Value: fmt.Sprintf("%dms", s.HeartbeatLatency().Milliseconds()), Inline: true},
			{Name: "Target channel", Value: channelValue, Inline: true},
			{Name: "Queue", Value: fmt.Sprintf("%d items", queueSize), Inline: true},
		},
	}
}
