// Package discord implements the outbound chat service on top of a Discord
// bot session. Besides posting notifications, the session hosts a small set
// of operator commands (see commands.go).
package discord

import (
	"context"
	"sync"

	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pushrelay/pkg/domain/interfaces"
	"github.com/m-mizutani/pushrelay/pkg/domain/model"
	"github.com/m-mizutani/pushrelay/pkg/domain/types"
	"github.com/m-mizutani/pushrelay/pkg/utils/logging"
)

type Client struct {
	session *discordgo.Session

	readyOnce sync.Once
	ready     chan struct{}

	channelID types.ChannelID
}

var _ interfaces.ChatService = (*Client)(nil)

func New(token types.BotToken, channelID types.ChannelID) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bot token is empty")
	}

	session, err := discordgo.New("Bot " + string(token))
	if err != nil {
		return nil, goerr.Wrap(err, "creating discord session")
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	client := &Client{
		session:   session,
		ready:     make(chan struct{}),
		channelID: channelID,
	}
	session.AddHandler(client.onReady)

	return client, nil
}

// Open connects the session. The Ready channel is closed once the gateway
// acknowledges the connection.
func (x *Client) Open() error {
	if err := x.session.Open(); err != nil {
		return goerr.Wrap(err, "opening discord session")
	}
	return nil
}

func (x *Client) Close() error {
	return x.session.Close()
}

// Ready returns a channel that is closed when the session is connected and
// deliveries may start.
func (x *Client) Ready() <-chan struct{} {
	return x.ready
}

// PostMessage sends a formatted message to the given channel as an embed.
func (x *Client) PostMessage(ctx context.Context, channelID types.ChannelID, msg *model.Message) error {
	if channelID == "" {
		return goerr.Wrap(types.ErrChannelNotFound, "channel ID is empty")
	}

	if _, err := x.session.ChannelMessageSendEmbed(string(channelID), toEmbed(msg), discordgo.WithContext(ctx)); err != nil {
		return goerr.Wrap(err, "sending message embed", goerr.V("channel_id", channelID))
	}
	return nil
}

func (x *Client) onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger := logging.Default().With(slog.String("bot_user", r.User.Username))
	logger.Info("discord session ready", slog.Int("guilds", len(r.Guilds)))

	for _, guild := range r.Guilds {
		logger.Debug("connected guild", slog.String("guild_id", guild.ID))
	}

	if err := s.UpdateWatchStatus(0, "commits on GitHub"); err != nil {
		logger.Warn("fail to update presence", slog.Any("error", err))
	}

	if x.channelID != "" {
		if _, err := s.Channel(string(x.channelID)); err != nil {
			logger.Warn("target channel is not resolvable",
				slog.String("channel_id", string(x.channelID)),
				slog.Any("error", err),
			)
		}
	}

	x.readyOnce.Do(func() {
		close(x.ready)
	})
}
