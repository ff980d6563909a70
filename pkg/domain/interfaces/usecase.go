package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/pushrelay/pkg/domain/model"
)

type UseCase interface {
	ReceivePushEvent(ctx context.Context, ev *model.PushEvent) error
	SimulatePush(ctx context.Context, pusherName, avatarURL string) error
	QueueSize() int
	RunDeliveryWorker(ctx context.Context) error
}
