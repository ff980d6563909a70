package model

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pushrelay/pkg/domain/types"
	"github.com/m-mizutani/pushrelay/pkg/utils/logging"
)

const maxCommitMessageLen = 80

// PushEvent is the canonical record of a repository push. It is built once by
// NormalizePushEvent and never mutated afterwards, so it can cross the
// queue boundary without locking.
type PushEvent struct {
	DeliveryID      types.DeliveryID
	RepoFullName    string
	RepoURL         string
	Branch          string
	PusherName      string
	PusherAvatarURL string
	Commits         []CommitSummary
	CompareURL      string
	ReceivedAt      time.Time
}

// CommitSummary holds the display-ready subset of a commit. Message is the
// first line only, bounded to 80 characters, with backtick and asterisk
// neutralized so it cannot break out of the destination markup.
type CommitSummary struct {
	ShortID    string
	Message    string
	URL        string
	AuthorName string
}

// NormalizePushEvent converts a raw push payload into a PushEvent. Missing
// repository, pusher, or commits fields degrade to placeholders; only a
// payload that fails to parse at all is an error. ReceivedAt is taken from
// the context clock, not from the payload.
func NormalizePushEvent(ctx context.Context, payload []byte, deliveryID types.DeliveryID) (*PushEvent, error) {
	var raw github.PushEvent
	if len(payload) == 0 {
		return nil, goerr.Wrap(types.ErrMalformedPayload, "empty push payload")
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, goerr.Wrap(types.ErrMalformedPayload, "parsing push payload", goerr.V("cause", err.Error()))
	}

	ev := &PushEvent{
		DeliveryID:      deliveryID,
		RepoFullName:    raw.GetRepo().GetFullName(),
		RepoURL:         raw.GetRepo().GetHTMLURL(),
		Branch:          RefToBranch(raw.GetRef()),
		PusherName:      raw.GetPusher().GetName(),
		PusherAvatarURL: raw.GetPusher().GetAvatarURL(),
		CompareURL:      raw.GetCompare(),
		ReceivedAt:      logging.CtxTime(ctx),
	}
	if ev.RepoFullName == "" {
		ev.RepoFullName = "unknown"
	}
	if ev.PusherName == "" {
		ev.PusherName = "unknown"
	}

	for _, c := range raw.Commits {
		ev.Commits = append(ev.Commits, CommitSummary{
			ShortID:    shortCommitID(c.GetID()),
			Message:    sanitizeCommitMessage(c.GetMessage()),
			URL:        c.GetURL(),
			AuthorName: commitAuthorName(c.GetAuthor()),
		})
	}

	return ev, nil
}

// RefToBranch derives a branch name from a git ref. "refs/heads/main"
// becomes "main" and nested names like "refs/heads/feature/x" keep their
// slashes. Anything else (tags, bare names) is returned unchanged.
func RefToBranch(v string) string {
	if ref := strings.SplitN(v, "/", 3); len(ref) == 3 && ref[0] == "refs" && ref[1] == "heads" {
		return ref[2]
	}
	return v
}

func shortCommitID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}

func commitAuthorName(author *github.CommitAuthor) string {
	if name := author.GetName(); name != "" {
		return name
	}
	return "unknown"
}

// sanitizeCommitMessage keeps only the first line, bounds it to
// maxCommitMessageLen with an ellipsis marker, and neutralizes markup
// characters that would be interpreted by the chat platform.
func sanitizeCommitMessage(msg string) string {
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	if len(msg) > maxCommitMessageLen {
		msg = msg[:maxCommitMessageLen-3] + "..."
	}
	msg = strings.ReplaceAll(msg, "`", "'")
	msg = strings.ReplaceAll(msg, "*", "")
	return msg
}
