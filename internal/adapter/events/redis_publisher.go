package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"groupbuy/internal/core/port"
)

// RedisPublisher relays campaign events over Redis pub/sub. A notification
// collaborator subscribes to the channel.
type RedisPublisher struct {
	client  goredis.UniversalClient
	channel string
	logger  *slog.Logger
}

// NewRedisPublisher wraps an existing client. An empty channel defaults to
// "groupbuy:events".
func NewRedisPublisher(client goredis.UniversalClient, channel string, logger *slog.Logger) *RedisPublisher {
	ch := strings.TrimSpace(channel)
	if ch == "" {
		ch = "groupbuy:events"
	}
	return &RedisPublisher{client: client, channel: ch, logger: logger}
}

// DialRedis connects to addr and verifies the connection with a ping.
func DialRedis(ctx context.Context, addr string) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

var _ port.EventPublisher = (*RedisPublisher)(nil)

// Publish sends each event as one JSON message.
func (p *RedisPublisher) Publish(ctx context.Context, events ...port.CampaignEvent) error {
	if p == nil || p.client == nil {
		return fmt.Errorf("redis publisher not initialized")
	}
	for _, ev := range events {
		raw, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		if err = p.client.Publish(ctx, p.channel, raw).Err(); err != nil {
			return fmt.Errorf("publish %s: %w", ev.Kind, err)
		}
		p.logger.Debug("campaign event published",
			slog.String("kind", string(ev.Kind)),
			slog.String("campaign_id", ev.CampaignID.String()))
	}
	return nil
}
