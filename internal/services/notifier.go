package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
	"github.com/talentflow/talentflow/internal/clients/webhook"
	"github.com/talentflow/talentflow/internal/events"
	"github.com/talentflow/talentflow/internal/logger"
	"github.com/talentflow/talentflow/internal/metrics"
)

type automationClient interface {
	Configured() bool
	Notify(ctx context.Context, payload webhook.NotificationPayload) error
}

// Notifier forwards interview-scheduled events to the automation webhook.
// Delivery is fire-and-forget: failures reach the log sink only.
type Notifier struct {
	client automationClient
}

func NewNotifier(bus EventBus.Bus, client automationClient) (*Notifier, error) {

	n := &Notifier{client: client}
	if err := bus.SubscribeAsync(events.InterviewScheduledTopic, n.onInterviewScheduled, false); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Notifier) onInterviewScheduled(event events.InterviewScheduled) {

	if !n.client.Configured() {
		return
	}

	payload := webhook.NotificationPayload{
		Recruiter: event.Recruiter,
		Candidate: event.Candidate,
		Job:       event.Job,
		Interview: webhook.InterviewPayload{
			Title:           event.Title,
			StartTime:       event.Start,
			EndTime:         event.End,
			Details:         event.Details,
			GoogleEventLink: event.GoogleEventLink,
		},
	}

	if err := n.client.Notify(context.Background(), payload); err != nil {
		metrics.WebhookDispatchCounter.WithLabelValues("failure").Inc()
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeWebhook).
			Errorf("failed to notify automation webhook: %v", err)
		return
	}

	metrics.WebhookDispatchCounter.WithLabelValues("success").Inc()
	log.Infof("automation webhook notified for interview %q", event.Title)
}
