package publisher

import (
	"context"
	"encoding/base64"

	"github.com/redis/go-redis/v9"
)

// snapshotField is the stream entry field carrying the encoded report
const snapshotField = "b64_report"

// RedisPublisher implements Publisher using a Redis stream. One entry is
// published per pipeline run.
type RedisPublisher struct {
	client    *redis.Client
	ctx       context.Context
	stream    string
	maxLength int
}

// NewRedisPublisher creates a new Redis publisher
func NewRedisPublisher(ctx context.Context, addr string, db int, stream string, maxLength int) *RedisPublisher {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	return &RedisPublisher{
		client:    client,
		ctx:       ctx,
		stream:    stream,
		maxLength: maxLength,
	}
}

// Publish publishes a report snapshot to the Redis stream.
// The message is base64 encoded before publishing.
func (p *RedisPublisher) Publish(message []byte) error {
	encodedMessage := base64.StdEncoding.EncodeToString(message)

	return p.client.XAdd(p.ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			snapshotField: encodedMessage,
		},
	}).Err()
}

// TrimStream trims the stream to the configured maximum length
func (p *RedisPublisher) TrimStream() error {
	return p.client.XTrimMaxLen(p.ctx, p.stream, int64(p.maxLength)).Err()
}

// Close closes the Redis connection
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
