package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"groupbuy/internal/core/port"
)

// AMQPPublisher relays campaign events to a RabbitMQ topic exchange. The
// routing key is "campaign.<kind>", e.g. "campaign.milestone_reached".
type AMQPPublisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	logger   *slog.Logger
}

// DialAMQP connects to url and declares a durable topic exchange.
func DialAMQP(url, exchange string, logger *slog.Logger) (*AMQPPublisher, error) {
	url = strings.Trim(strings.TrimSpace(url), "\"'")
	if !strings.HasPrefix(url, "amqp://") && !strings.HasPrefix(url, "amqps://") {
		return nil, errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	if exchange == "" {
		exchange = "groupbuy.events"
	}

	conn, err := amqp091.DialConfig(url, amqp091.Config{Dial: amqp091.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &AMQPPublisher{conn: conn, channel: ch, exchange: exchange, logger: logger}, nil
}

var _ port.EventPublisher = (*AMQPPublisher)(nil)

// Publish sends each event as one persistent JSON message.
func (p *AMQPPublisher) Publish(ctx context.Context, events ...port.CampaignEvent) error {
	if p == nil || p.channel == nil {
		return errors.New("amqp publisher not initialized")
	}
	for _, ev := range events {
		body, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		err = p.channel.PublishWithContext(ctx, p.exchange, RoutingKey(ev), false, false, amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    ev.CampaignID.String() + ":" + string(ev.Kind),
			Timestamp:    ev.At,
			Body:         body,
		})
		if err != nil {
			return fmt.Errorf("publish %s: %w", ev.Kind, err)
		}
		p.logger.Debug("campaign event published",
			slog.String("exchange", p.exchange),
			slog.String("kind", string(ev.Kind)),
			slog.String("campaign_id", ev.CampaignID.String()))
	}
	return nil
}

// Close closes the channel and the connection.
func (p *AMQPPublisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// RoutingKey is the topic routing key of ev.
func RoutingKey(ev port.CampaignEvent) string {
	return "campaign." + string(ev.Kind)
}
