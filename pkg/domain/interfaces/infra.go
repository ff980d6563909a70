package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . ChatService EventQueue

import (
	"context"

	"github.com/m-mizutani/pushrelay/pkg/domain/model"
	"github.com/m-mizutani/pushrelay/pkg/domain/types"
)

// ChatService is the outbound chat platform. Ready is closed once the
// underlying connection is established; the delivery worker must not post
// before that.
type ChatService interface {
	PostMessage(ctx context.Context, channelID types.ChannelID, msg *model.Message) error
	Ready() <-chan struct{}
}

// EventQueue hands normalized events from the ingestion boundary to the
// delivery worker. Enqueue never blocks and reports whether the item was
// accepted (false means it was dropped as a duplicate delivery). Dequeue
// suspends until an item is available or ctx is done.
type EventQueue interface {
	Enqueue(item model.QueueItem) bool
	TryDequeue() (model.QueueItem, bool)
	Dequeue(ctx context.Context) (model.QueueItem, error)
	Size() int
}
