/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"context"
	"fmt"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/vcissuer/issuer/internal/logfields"
	"github.com/vcissuer/issuer/pkg/event/spi"
	"github.com/vcissuer/issuer/pkg/lifecycle"
)

// Handler processes one event. Returned errors are logged.
type Handler func(ctx context.Context, event *spi.Event) error

type eventSubscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *spi.Event, error)
}

// Subscriber feeds the events of one topic to a handler.
type Subscriber struct {
	*lifecycle.Lifecycle

	handler   Handler
	eventChan <-chan *spi.Event
	done      chan struct{}
}

// NewEventSubscriber subscribes to topic. Events are handled once Start is called.
func NewEventSubscriber(sub eventSubscriber, topic string, handler Handler) (*Subscriber, error) {
	ch, err := sub.Subscribe(context.Background(), topic)
	if err != nil {
		return nil, fmt.Errorf("subscribe to topic [%s]: %w", topic, err)
	}

	s := &Subscriber{
		handler:   handler,
		eventChan: ch,
		done:      make(chan struct{}),
	}

	s.Lifecycle = lifecycle.New("event-subscriber-"+topic, lifecycle.WithStart(s.start))

	return s, nil
}

// Done is closed once the event channel has been drained and closed.
func (s *Subscriber) Done() <-chan struct{} {
	return s.done
}

func (s *Subscriber) start() {
	go s.listen()
}

func (s *Subscriber) listen() {
	defer close(s.done)

	for e := range s.eventChan {
		s.handleEvent(e)
	}

	logger.Info("event channel closed")
}

func (s *Subscriber) handleEvent(e *spi.Event) {
	logger.Debug("handling event", log.WithID(e.ID), logfields.WithEvent(e.Type))

	if err := s.handler(context.Background(), e); err != nil {
		logger.Error("failed to handle event", log.WithID(e.ID), logfields.WithEvent(e.Type), log.WithError(err))
	}
}
