package config

import (
	"log/slog"

	"github.com/m-mizutani/pushrelay/pkg/domain/types"
	"github.com/m-mizutani/pushrelay/pkg/infra/discord"
	"github.com/urfave/cli/v3"
)

type Discord struct {
	token     types.BotToken `masq:"secret"`
	channelID string
}

func (x *Discord) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "discord-token",
			Usage:       "Discord bot token",
			Category:    "Discord",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("PUSHRELAY_DISCORD_TOKEN"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "discord-channel-id",
			Usage:       "Destination channel ID for push notifications",
			Category:    "Discord",
			Destination: &x.channelID,
			Sources:     cli.EnvVars("PUSHRELAY_DISCORD_CHANNEL_ID"),
			Required:    true,
		},
	}
}

func (x Discord) New() (*discord.Client, error) {
	return discord.New(x.token, x.ChannelID())
}

func (x Discord) ChannelID() types.ChannelID {
	return types.ChannelID(x.channelID)
}

func (x Discord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Token.len", len(x.token)),
		slog.String("ChannelID", x.channelID),
	)
}
