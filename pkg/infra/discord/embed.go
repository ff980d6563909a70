package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/pushrelay/pkg/domain/model"
)

// toEmbed maps the platform-neutral message document onto a Discord embed.
func toEmbed(msg *model.Message) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       msg.Title,
		URL:         msg.URL,
		Description: msg.Description,
		Color:       msg.Color,
	}

	if !msg.Timestamp.IsZero() {
		embed.Timestamp = msg.Timestamp.Format(time.RFC3339)
	}
	if msg.Author.Name != "" {
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    msg.Author.Name,
			IconURL: msg.Author.IconURL,
		}
	}
	if msg.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: msg.Footer}
	}

	for _, f := range msg.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}

	return embed
}
