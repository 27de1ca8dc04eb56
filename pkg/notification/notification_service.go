/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination notification_service_mocks_test.go -self_package mocks -package notification_test -source=notification_service.go -mock_names mailSender=MockMailSender

package notification

import (
	"context"
	"fmt"
	"strconv"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/vcissuer/issuer/internal/logfields"
	"github.com/vcissuer/issuer/pkg/event/spi"
)

var logger = log.New("notification")

type mailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Service renders holder notifications and hands them to a mail sender.
type Service struct {
	sender    mailSender
	templates *templates
}

func NewService(sender mailSender) (*Service, error) {
	t, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &Service{
		sender:    sender,
		templates: t,
	}, nil
}

// SendPin mails a tx code to the holder.
func (s *Service) SendPin(ctx context.Context, n *spi.PinNotification) error {
	body, err := s.templates.pin.Render(map[string]string{
		"name":    n.Name,
		"pin":     n.PIN,
		"minutes": strconv.FormatInt(n.ExpiresIn/60, 10), //nolint:gomnd
	})
	if err != nil {
		return fmt.Errorf("render pin notification: %w", err)
	}

	return s.sender.Send(ctx, n.Email, pinSubject, body)
}

// SendActivation mails the wallet activation link of a new procedure.
func (s *Service) SendActivation(ctx context.Context, n *spi.ActivationNotification) error {
	body, err := s.templates.activation.Render(map[string]string{
		"name":         n.Name,
		"organization": n.Organization,
		"link":         n.Link,
	})
	if err != nil {
		return fmt.Errorf("render activation notification: %w", err)
	}

	return s.sender.Send(ctx, n.Email, activationSubject, body)
}

// HandleEvent is the event subscriber handler of spi.NotificationTopic.
func (s *Service) HandleEvent(ctx context.Context, e *spi.Event) error {
	switch e.Type {
	case spi.PinNotificationRequested:
		var n spi.PinNotification

		if err := e.Decode(&n); err != nil {
			return err
		}

		return s.SendPin(ctx, &n)
	case spi.ActivationNotificationRequested:
		var n spi.ActivationNotification

		if err := e.Decode(&n); err != nil {
			return err
		}

		return s.SendActivation(ctx, &n)
	default:
		logger.Warnc(ctx, "unexpected notification event", logfields.WithEvent(e.Type))

		return nil
	}
}
