package safetyalert

import (
	"adhd-intake-service/internal/app/contracts"
	"adhd-intake-service/internal/app/models"
	"adhd-intake-service/internal/pkg/constvars"
	"adhd-intake-service/internal/pkg/exceptions"
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type safetyAlertPublisher struct {
	Channel channelPublisher
	Queue   string
	Log     *zap.Logger
	mu      sync.Mutex
}

// NewSafetyAlertPublisher opens a channel and declares the durable alert queue
// the on-call tooling consumes from.
func NewSafetyAlertPublisher(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.SafetyAlertPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	return &safetyAlertPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (p *safetyAlertPublisher) PublishSafetyAlert(ctx context.Context, alert models.SafetyAlert) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(alert)
	if err != nil {
		p.Log.Error("safetyAlertPublisher.PublishSafetyAlert error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     9,
		MessageId:    alert.AlertID,
		Timestamp:    alert.RaisedAt,
		Headers: amqp091.Table{
			"message_type": "SAFETY_ALERT",
			"reason":       alert.Reason,
		},
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	p.mu.Unlock()
	if err != nil {
		p.Log.Error("safetyAlertPublisher.PublishSafetyAlert error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, p.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("safetyAlertPublisher.PublishSafetyAlert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.Queue),
		zap.String(constvars.LoggingAlertIDKey, alert.AlertID),
	)
	return nil
}
