package safetyalert

import (
	"adhd-intake-service/internal/app/models"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingChannel struct {
	key      string
	messages []amqp091.Publishing
	err      error
}

func (c *recordingChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp091.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.key = key
	c.messages = append(c.messages, msg)
	return nil
}

func TestPublishSafetyAlert(t *testing.T) {
	alert := models.SafetyAlert{
		AlertID:   "a-1",
		SessionID: "s-1",
		Reason:    "active-plan",
		Responder: models.ResponderSelf,
		Language:  models.LanguageFrench,
		Phone:     "555-1234",
		RaisedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("Publishes Persistent JSON To Queue", func(t *testing.T) {
		channel := &recordingChannel{}
		publisher := &safetyAlertPublisher{Channel: channel, Queue: "alerts", Log: zap.NewNop()}

		require.NoError(t, publisher.PublishSafetyAlert(context.Background(), alert))

		require.Len(t, channel.messages, 1)
		msg := channel.messages[0]
		assert.Equal(t, "alerts", channel.key)
		assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
		assert.Equal(t, "a-1", msg.MessageId)

		var decoded models.SafetyAlert
		require.NoError(t, json.Unmarshal(msg.Body, &decoded))
		assert.Equal(t, alert, decoded)
	})

	t.Run("Publish Failure Is Returned", func(t *testing.T) {
		publisher := &safetyAlertPublisher{Channel: &recordingChannel{err: errors.New("channel closed")}, Queue: "alerts", Log: zap.NewNop()}

		err := publisher.PublishSafetyAlert(context.Background(), alert)

		assert.ErrorContains(t, err, "alerts")
	})
}
