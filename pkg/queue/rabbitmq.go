package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"flow-social/pkg/config"
	"flow-social/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	NotificationQueueName = "notification_queue"
	NotificationExchange  = "notifications"
	SocialEventRoutingKey = "social_event"
)

// Event types published by the service. Consumed by the notifications feed.
const (
	EventNewPost    = "new_post"
	EventNewComment = "new_comment"
	EventPostVoted  = "post_voted"
)

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		NotificationExchange, // name
		"direct",             // type
		true,                 // durable
		false,                // auto-deleted
		false,                // internal
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		NotificationQueueName, // name
		true,                  // durable
		false,                 // delete when unused
		false,                 // exclusive
		false,                 // no-wait
		amqp.Table{
			"x-max-priority": 10,
		},
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		NotificationQueueName,
		SocialEventRoutingKey,
		NotificationExchange,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PublishSocialEvent publishes a feed event (new post, comment, vote) with priority.
// Callers treat publish failures as advisory only.
func (c *Client) PublishSocialEvent(event map[string]interface{}) error {
	priority := 1
	if p, ok := event["priority"].(int); ok {
		priority = p
		if priority < 0 {
			priority = 0
		}
		if priority > 10 {
			priority = 10
		}
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = c.channel.Publish(
		NotificationExchange,
		SocialEventRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         eventJSON,
			Priority:     uint8(priority),
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish event to exchange=%s, routing_key=%s: %v", NotificationExchange, SocialEventRoutingKey, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Info("[RABBITMQ] Published social event to exchange=%s, routing_key=%s: %s", NotificationExchange, SocialEventRoutingKey, string(eventJSON))
	return nil
}

// ConsumeSocialEvents consumes feed events from the queue.
func (c *Client) ConsumeSocialEvents(handler func(event map[string]interface{}) error) error {
	msgs, err := c.channel.Consume(
		NotificationQueueName, // queue
		"",                    // consumer
		false,                 // auto-ack (we'll manually ack after processing)
		false,                 // exclusive
		false,                 // no-local
		false,                 // no-wait
		nil,                   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from queue: %s", NotificationQueueName)

	go func() {
		for msg := range msgs {
			var event map[string]interface{}
			if err := json.Unmarshal(msg.Body, &event); err != nil {
				c.logger.Error("[RABBITMQ] Failed to unmarshal event: %v, body=%s", err, string(msg.Body))
				msg.Nack(false, false) // Reject and don't requeue
				continue
			}

			if err := handler(event); err != nil {
				c.logger.Error("[RABBITMQ] Handler failed to process event: %v, event=%+v", err, event)
				msg.Nack(false, true) // Reject and requeue
				continue
			}

			msg.Ack(false)
		}
	}()

	return nil
}

// GetQueueLength returns the number of messages in the queue
func (c *Client) GetQueueLength() (int, error) {
	queue, err := c.channel.QueueInspect(NotificationQueueName)
	if err != nil {
		return 0, err
	}
	return queue.Messages, nil
}
