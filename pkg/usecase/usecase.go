package usecase

import (
	"time"

	"github.com/m-mizutani/pushrelay/pkg/domain/interfaces"
	"github.com/m-mizutani/pushrelay/pkg/domain/types"
	"github.com/m-mizutani/pushrelay/pkg/infra"
	"github.com/sony/gobreaker/v2"
)

const (
	defaultSendInterval = 100 * time.Millisecond
	defaultSendTimeout  = 10 * time.Second
)

type UseCase struct {
	clients *infra.Clients

	channelID    types.ChannelID
	sendInterval time.Duration
	sendTimeout  time.Duration
	repoOwner    string
	repoName     string

	breaker *gobreaker.CircuitBreaker[struct{}]
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithChannelID sets the destination channel of push notifications.
func WithChannelID(id types.ChannelID) Option {
	return func(x *UseCase) {
		x.channelID = id
	}
}

// WithSendInterval sets the pause between two consecutive deliveries. It
// keeps the worker under the chat platform's rate limits.
func WithSendInterval(d time.Duration) Option {
	return func(x *UseCase) {
		if d > 0 {
			x.sendInterval = d
		}
	}
}

// WithSendTimeout bounds a single outbound send call.
func WithSendTimeout(d time.Duration) Option {
	return func(x *UseCase) {
		if d > 0 {
			x.sendTimeout = d
		}
	}
}

// WithSimulatedRepo sets the repository used for synthetic push events.
func WithSimulatedRepo(owner, name string) Option {
	return func(x *UseCase) {
		x.repoOwner = owner
		x.repoName = name
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:      clients,
		sendInterval: defaultSendInterval,
		sendTimeout:  defaultSendTimeout,
	}
	for _, opt := range options {
		opt(uc)
	}

	uc.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:     "chat-delivery",
		Interval: 60 * time.Second,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	return uc
}
