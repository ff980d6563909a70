package infra

import (
	"github.com/m-mizutani/pushrelay/pkg/domain/interfaces"
	"github.com/m-mizutani/pushrelay/pkg/queue"
)

type Clients struct {
	chat       interfaces.ChatService
	eventQueue interfaces.EventQueue
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		eventQueue: queue.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Chat() interfaces.ChatService {
	return x.chat
}

func (x *Clients) Queue() interfaces.EventQueue {
	return x.eventQueue
}

func WithChat(chat interfaces.ChatService) Option {
	return func(x *Clients) {
		x.chat = chat
	}
}

func WithQueue(q interfaces.EventQueue) Option {
	return func(x *Clients) {
		x.eventQueue = q
	}
}
