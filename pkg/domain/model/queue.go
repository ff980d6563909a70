package model

import "github.com/m-mizutani/pushrelay/pkg/domain/types"

// EventKind tags the payload of a QueueItem. Only pushes exist today, but
// the queue mechanics are independent of the kind set.
type EventKind string

const EventKindPush EventKind = "push"

// QueueItem is the unit of transfer between the ingestion boundary and the
// delivery worker. Exactly one payload field is set, selected by Kind.
type QueueItem struct {
	Kind EventKind
	Push *PushEvent
}

func NewPushQueueItem(ev *PushEvent) QueueItem {
	return QueueItem{Kind: EventKindPush, Push: ev}
}

// DeliveryID returns the webhook delivery ID of the wrapped event, if any.
// The queue uses it to drop duplicate deliveries when deduplication is
// enabled.
func (x QueueItem) DeliveryID() types.DeliveryID {
	if x.Kind == EventKindPush && x.Push != nil {
		return x.Push.DeliveryID
	}
	return ""
}
