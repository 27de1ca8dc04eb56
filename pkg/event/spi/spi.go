/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package spi

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	// NotificationTopic carries requests for out of band messages to credential holders.
	NotificationTopic = "issuer-notifications"
)

// EventType event type.
type EventType string

const (
	// PinNotificationRequested asks for the tx code of an offer to be sent to the holder.
	PinNotificationRequested = EventType("pin_notification_requested")
	// ActivationNotificationRequested asks for the activation link of a new procedure to be sent.
	ActivationNotificationRequested = EventType("activation_notification_requested")
)

type Event struct {
	// SpecVersion is spec version(required).
	SpecVersion string `json:"specVersion"`

	// ID identifies the event(required).
	ID string `json:"id"`

	// Source is URI for producer(required).
	Source string `json:"source"`

	// Type defines event type(required).
	Type EventType `json:"type"`

	// Time defines time of occurrence(required).
	Time time.Time `json:"time"`

	// DataContentType is data content type(optional).
	DataContentType string `json:"dataContentType,omitempty"`

	// Data defines message(optional).
	Data json.RawMessage `json:"data,omitempty"`

	// TransactionID defines transaction ID(optional).
	TransactionID string `json:"txnId,omitempty"`
}

// PinNotification is the payload of PinNotificationRequested.
type PinNotification struct {
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	PIN       string `json:"pin"`
	ExpiresIn int64  `json:"expires_in"`
}

// ActivationNotification is the payload of ActivationNotificationRequested.
type ActivationNotification struct {
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	Organization string `json:"organization,omitempty"`
	Link         string `json:"link"`
}

// Copy an event.
func (m *Event) Copy() *Event {
	c := *m

	return &c
}

// Decode unmarshals the event data into v.
func (m *Event) Decode(v interface{}) error {
	if err := json.Unmarshal(m.Data, v); err != nil {
		return fmt.Errorf("decode %s event data: %w", m.Type, err)
	}

	return nil
}

// NewEventWithPayload creates a new Event with a JSON payload.
func NewEventWithPayload(id, source string, eventType EventType, payload interface{}) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s event data: %w", eventType, err)
	}

	event := NewEvent(id, source, eventType)

	event.Data = data
	event.DataContentType = "application/json"

	return event, nil
}

// NewEvent creates a new Event and sets all required fields.
func NewEvent(id, source string, eventType EventType) *Event {
	return &Event{
		SpecVersion: "1.0",
		ID:          id,
		Source:      source,
		Type:        eventType,
		Time:        time.Now().UTC(),
	}
}
