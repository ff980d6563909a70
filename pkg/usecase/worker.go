package usecase

import (
	"context"
	"time"

	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pushrelay/pkg/domain/model"
	"github.com/m-mizutani/pushrelay/pkg/domain/types"
	"github.com/m-mizutani/pushrelay/pkg/utils/errutil"
	"github.com/m-mizutani/pushrelay/pkg/utils/logging"
)

// RunDeliveryWorker drains the event queue and sends a formatted message
// for each item, preserving FIFO order. It waits for the chat connection to
// become ready before the first delivery, and returns nil once ctx is done.
// A failed send drops only that item; the loop always continues.
func (x *UseCase) RunDeliveryWorker(ctx context.Context) error {
	chat := x.clients.Chat()
	if chat == nil {
		return goerr.Wrap(types.ErrInvalidOption, "chat service is not configured")
	}

	select {
	case <-ctx.Done():
		return nil
	case <-chat.Ready():
	}

	logger := logging.From(ctx)
	logger.Info("delivery worker started", slog.String("channel_id", string(x.channelID)))

	for {
		item, err := x.clients.Queue().Dequeue(ctx)
		if err != nil {
			logger.Info("delivery worker stopped", slog.Any("reason", ctx.Err()))
			return nil
		}

		x.deliver(ctx, item)

		// Pace deliveries so the chat platform's rate limits are not hit.
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(x.sendInterval):
		}
	}
}

// deliver formats and sends a single queue item. Errors are reported and
// the item is discarded; there is no requeue.
func (x *UseCase) deliver(ctx context.Context, item model.QueueItem) {
	switch item.Kind {
	case model.EventKindPush:
		x.deliverPush(ctx, item.Push)
	default:
		logging.From(ctx).Warn("unknown queue item kind", slog.String("kind", string(item.Kind)))
	}
}

func (x *UseCase) deliverPush(ctx context.Context, ev *model.PushEvent) {
	if x.channelID == "" {
		errutil.HandleError(ctx, "delivery channel is not configured",
			goerr.Wrap(types.ErrChannelNotFound, "missing channel ID",
				goerr.V("repository", ev.RepoFullName),
				goerr.V("delivery_id", ev.DeliveryID),
			))
		return
	}

	msg := model.BuildPushMessage(ev)

	_, err := x.breaker.Execute(func() (struct{}, error) {
		sendCtx, cancel := context.WithTimeout(ctx, x.sendTimeout)
		defer cancel()
		return struct{}{}, x.clients.Chat().PostMessage(sendCtx, x.channelID, msg)
	})
	if err != nil {
		errutil.HandleError(ctx, "fail to deliver push notification",
			goerr.Wrap(types.ErrDeliveryFailed, "posting message",
				goerr.V("repository", ev.RepoFullName),
				goerr.V("branch", ev.Branch),
				goerr.V("delivery_id", ev.DeliveryID),
				goerr.V("cause", err.Error()),
			))
		return
	}

	logging.From(ctx).Info("delivered push notification",
		slog.String("repository", ev.RepoFullName),
		slog.String("branch", ev.Branch),
		slog.Int("commits", len(ev.Commits)),
	)
}
