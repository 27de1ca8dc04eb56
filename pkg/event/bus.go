/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/vcissuer/issuer/internal/logfields"
	"github.com/vcissuer/issuer/pkg/event/spi"
	"github.com/vcissuer/issuer/pkg/lifecycle"
)

var logger = log.New("event-bus")

const defaultBufferSize = 250

// Option configures the bus.
type Option func(b *Bus)

// WithBufferSize sets the capacity of the publish queue and of every subscriber channel.
func WithBufferSize(size int) Option {
	return func(b *Bus) {
		if size > 0 {
			b.bufferSize = size
		}
	}
}

// Bus is an in-process publisher/subscriber. A single dispatcher goroutine fans
// queued batches out to the subscribers of their topic, so events of one topic
// are delivered in publish order.
type Bus struct {
	*lifecycle.Lifecycle

	bufferSize int

	mutex  sync.RWMutex
	topics map[string][]chan *spi.Event

	queue chan batch
	quit  chan struct{}
	wg    sync.WaitGroup
}

type batch struct {
	topic  string
	events []*spi.Event
}

// NewEventBus returns a started bus.
func NewEventBus(opts ...Option) *Bus {
	b := &Bus{
		bufferSize: defaultBufferSize,
		topics:     make(map[string][]chan *spi.Event),
		quit:       make(chan struct{}),
	}

	for _, opt := range opts {
		opt(b)
	}

	b.queue = make(chan batch, b.bufferSize)
	b.Lifecycle = lifecycle.New("event-bus", lifecycle.WithStop(b.stop))

	b.wg.Add(1)

	go b.dispatch()

	b.Start()

	return b
}

// Close stops the bus. Batches already queued are delivered before the
// subscriber channels are closed.
func (b *Bus) Close() error {
	b.Stop()

	return nil
}

func (b *Bus) stop() {
	close(b.quit)
	b.wg.Wait()

	b.mutex.Lock()
	defer b.mutex.Unlock()

	n := 0

	for _, channels := range b.topics {
		for _, ch := range channels {
			close(ch)
			n++
		}
	}

	b.topics = nil

	logger.Info("event bus stopped", logfields.WithTotal(n))
}

// Subscribe returns the channel over which the events of topic are delivered.
// The channel is closed when the bus is closed.
func (b *Bus) Subscribe(_ context.Context, topic string) (<-chan *spi.Event, error) {
	if b.State() != lifecycle.StateStarted {
		return nil, lifecycle.ErrNotStarted
	}

	ch := make(chan *spi.Event, b.bufferSize)

	b.mutex.Lock()
	b.topics[topic] = append(b.topics[topic], ch)
	b.mutex.Unlock()

	logger.Debug("subscribed to topic", log.WithTopic(topic))

	return ch, nil
}

// Publish queues events for delivery. It blocks only while the queue is full,
// and gives up when ctx is done.
func (b *Bus) Publish(ctx context.Context, topic string, events ...*spi.Event) error {
	if b.State() != lifecycle.StateStarted {
		return lifecycle.ErrNotStarted
	}

	select {
	case b.queue <- batch{topic: topic, events: events}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("publish to topic [%s]: %w", topic, ctx.Err())
	}
}

func (b *Bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case bt := <-b.queue:
			b.deliver(bt)
		case <-b.quit:
			b.drain()

			return
		}
	}
}

func (b *Bus) drain() {
	for {
		select {
		case bt := <-b.queue:
			b.deliver(bt)
		default:
			return
		}
	}
}

func (b *Bus) deliver(bt batch) {
	b.mutex.RLock()
	channels := b.topics[bt.topic]
	b.mutex.RUnlock()

	if len(channels) == 0 {
		logger.Debug("dropping events without subscribers", log.WithTopic(bt.topic), logfields.WithTotal(len(bt.events)))

		return
	}

	for _, e := range bt.events {
		logger.Debug("delivering event", log.WithID(e.ID), logfields.WithEvent(e.Type))

		for _, ch := range channels {
			// every subscriber gets its own copy
			ch <- e.Copy()
		}
	}
}
