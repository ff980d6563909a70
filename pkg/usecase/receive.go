package usecase

import (
	"context"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/pushrelay/pkg/domain/model"
	"github.com/m-mizutani/pushrelay/pkg/domain/types"
	"github.com/m-mizutani/pushrelay/pkg/utils/logging"
)

// ReceivePushEvent accepts a normalized push event into the delivery queue.
// It never blocks on chat platform I/O; the caller can respond to the
// webhook sender immediately.
func (x *UseCase) ReceivePushEvent(ctx context.Context, ev *model.PushEvent) error {
	if !x.clients.Queue().Enqueue(model.NewPushQueueItem(ev)) {
		logging.From(ctx).Info("dropped duplicate webhook delivery",
			slog.String("delivery_id", string(ev.DeliveryID)),
			slog.String("repository", ev.RepoFullName),
		)
		return nil
	}

	logging.From(ctx).Debug("enqueued push event",
		slog.String("repository", ev.RepoFullName),
		slog.String("branch", ev.Branch),
		slog.Int("queue_size", x.clients.Queue().Size()),
	)
	return nil
}

// QueueSize reports the current depth of the delivery queue.
func (x *UseCase) QueueSize() int {
	return x.clients.Queue().Size()
}

// SimulatePush enqueues a synthetic push event for the configured
// repository. It exercises the same queue and delivery path as a real
// webhook.
func (x *UseCase) SimulatePush(ctx context.Context, pusherName, avatarURL string) error {
	owner, name := x.repoOwner, x.repoName
	if owner == "" {
		owner = "example"
	}
	if name == "" {
		name = "repository"
	}
	repoURL := "https://github.com/" + owner + "/" + name

	ev := &model.PushEvent{
		DeliveryID:      types.DeliveryID("simulated-" + uuid.NewString()),
		RepoFullName:    owner + "/" + name,
		RepoURL:         repoURL,
		Branch:          "main",
		PusherName:      pusherName,
		PusherAvatarURL: avatarURL,
		Commits: []model.CommitSummary{
			{
				ShortID:    "abc123d",
				Message:    "Simulated push event",
				URL:        repoURL + "/commit/abc123d",
				AuthorName: pusherName,
			},
		},
		CompareURL: repoURL + "/compare/old...new",
		ReceivedAt: logging.CtxTime(ctx).Truncate(time.Second),
	}

	return x.ReceivePushEvent(ctx, ev)
}
