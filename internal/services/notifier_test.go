package services

import (
	"context"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/talentflow/talentflow/internal/clients/webhook"
	"github.com/talentflow/talentflow/internal/entities"
	"github.com/talentflow/talentflow/internal/events"
)

type capturingAutomationClient struct {
	configured bool
	payloads   chan webhook.NotificationPayload
	err        error
}

func (c *capturingAutomationClient) Configured() bool {
	return c.configured
}

func (c *capturingAutomationClient) Notify(ctx context.Context, payload webhook.NotificationPayload) error {
	c.payloads <- payload
	return c.err
}

func Test_Notifier_ForwardsInterviewScheduledToWebhook(t *testing.T) {

	assert := assert.New(t)

	client := &capturingAutomationClient{configured: true, payloads: make(chan webhook.NotificationPayload, 1)}
	bus := EventBus.New()

	_, err := NewNotifier(bus, client)
	assert.NoError(err)

	bus.Publish(events.InterviewScheduledTopic, events.InterviewScheduled{
		Recruiter:       entities.UserProfile{ID: 42, Name: "Ana"},
		Candidate:       entities.Candidate{ID: 7, Name: "Maria"},
		Title:           "Entrevista",
		GoogleEventLink: "https://calendar.google.com/event?eid=abc",
	})
	bus.WaitAsync()

	select {
	case payload := <-client.payloads:
		assert.Equal("https://calendar.google.com/event?eid=abc", payload.Interview.GoogleEventLink)
		assert.Equal("Entrevista", payload.Interview.Title)
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was not notified")
	}
}

func Test_Notifier_SkipsWhenNoEndpointConfigured(t *testing.T) {

	client := &capturingAutomationClient{configured: false, payloads: make(chan webhook.NotificationPayload, 1)}
	bus := EventBus.New()

	_, err := NewNotifier(bus, client)
	assert.NoError(t, err)

	bus.Publish(events.InterviewScheduledTopic, events.InterviewScheduled{Title: "Entrevista"})
	bus.WaitAsync()

	assert.Empty(t, client.payloads)
}
