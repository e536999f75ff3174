package cartui

import (
	"context"
	"strings"

	"github.com/Gunvolt24/pixelcraft/internal/notify"
	"github.com/Gunvolt24/pixelcraft/internal/ports"
)

// Newsletter — форма подписки на рассылку.
type Newsletter struct {
	sub      Subscriber
	notifier Notifier
	log      ports.Logger
}

func NewNewsletter(sub Subscriber, notifier Notifier, log ports.Logger) *Newsletter {
	return &Newsletter{sub: sub, notifier: notifier, log: log}
}

// Subscribe — возвращает, нужно ли очистить форму. Недоступный сервер считается успехом
// (подписка в офлайн-режиме).
func (n *Newsletter) Subscribe(ctx context.Context, email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		n.notifier.Show(MsgEmailRequired, notify.SeverityError)
		return false
	}

	res, err := n.sub.Subscribe(ctx, email)
	if err != nil {
		n.log.Warnf(ctx, "newsletter: request failed: %v", err)
		n.notifier.Show(MsgNewsletterDone, notify.SeveritySuccess)
		return true
	}

	severity := notify.SeverityError
	if res.Success {
		severity = notify.SeveritySuccess
	}
	n.notifier.Show(res.Message, severity)
	return res.Success
}
