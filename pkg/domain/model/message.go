package model

import (
	"fmt"
	"time"
)

const maxShownCommits = 3

// colorGreen is the accent color of push notifications.
const colorGreen = 0x2ECC71

// Message is a platform-neutral structured document. The chat client is
// responsible for mapping it onto its own wire format.
type Message struct {
	Title       string
	URL         string
	Description string
	Color       int
	Timestamp   time.Time
	Author      MessageAuthor
	Fields      []MessageField
	Footer      string
}

type MessageAuthor struct {
	Name    string
	IconURL string
}

type MessageField struct {
	Name   string
	Value  string
	Inline bool
}

// BuildPushMessage maps a PushEvent to a Message. It is a pure function: the
// same event always yields an identical message. At most maxShownCommits
// commits are rendered individually; the rest collapse into a "+N more"
// field. The event itself is never modified.
func BuildPushMessage(ev *PushEvent) *Message {
	msg := &Message{
		Title:       fmt.Sprintf("📦 Push to %s", ev.RepoFullName),
		URL:         ev.RepoURL,
		Description: fmt.Sprintf("**Branch:** `%s`\n**Commits:** %d", ev.Branch, len(ev.Commits)),
		Color:       colorGreen,
		Timestamp:   ev.ReceivedAt,
		Author: MessageAuthor{
			Name:    ev.PusherName,
			IconURL: ev.PusherAvatarURL,
		},
		Footer: fmt.Sprintf("Push by %s", ev.PusherName),
	}

	msg.Fields = append(msg.Fields, MessageField{
		Name:   "Repository",
		Value:  fmt.Sprintf("[%s](%s)", ev.RepoFullName, ev.RepoURL),
		Inline: true,
	})

	if ev.CompareURL != "" {
		msg.Fields = append(msg.Fields, MessageField{
			Name:   "Compare",
			Value:  fmt.Sprintf("[View changes](%s)", ev.CompareURL),
			Inline: true,
		})
	}

	shown := ev.Commits
	if len(shown) > maxShownCommits {
		shown = shown[:maxShownCommits]
	}
	for _, c := range shown {
		msg.Fields = append(msg.Fields, MessageField{
			Name:  fmt.Sprintf("Commit `%s` by %s", c.ShortID, c.AuthorName),
			Value: fmt.Sprintf("%s\n[View commit](%s)", c.Message, c.URL),
		})
	}

	if rest := len(ev.Commits) - maxShownCommits; rest > 0 {
		msg.Fields = append(msg.Fields, MessageField{
			Name:  "More commits",
			Value: fmt.Sprintf("+%d more", rest),
		})
	}

	return msg
}
