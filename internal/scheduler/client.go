package scheduler

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"homeverse_backend/internal/history/repository"
	"homeverse_backend/platform/config"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

const (
	persistMaxRetry  = 5
	persistTimeout   = 30 * time.Second
	persistRetention = 24 * time.Hour
	defaultQueue     = "default"
)

// Client enqueues archive tasks. It satisfies the history service's Persister.
type Client struct {
	client *asynq.Client
	queue  string
}

func NewClient(cfg config.SchedulerConfig) (*Client, error) {
	opt, err := connOpt(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{
		client: asynq.NewClient(opt),
		queue:  queueName(cfg),
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// PersistEstimate enqueues an estimate for archiving. The estimate id is the
// task id; enqueueing the same estimate twice is a no-op.
func (c *Client) PersistEstimate(ctx context.Context, estimate repository.Estimate) error {
	if c == nil || c.client == nil {
		return nil
	}

	task, err := NewPersistEstimateTask(PersistEstimatePayload{Estimate: estimate})
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(c.queue),
		asynq.TaskID(estimate.ID.String()),
		asynq.MaxRetry(persistMaxRetry),
		asynq.Timeout(persistTimeout),
		asynq.Retention(persistRetention),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}

func queueName(cfg config.SchedulerConfig) string {
	if q := cfg.GetAsynqQueueName(); q != "" {
		return q
	}
	return defaultQueue
}

// connOpt builds asynq connection options from REDIS_URL. rediss:// URLs keep
// their TLS config; REDIS_TLS_INSECURE skips verification.
func connOpt(cfg config.SchedulerConfig) (asynq.RedisClientOpt, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return asynq.RedisClientOpt{}, errors.New("redis url not configured")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, fmt.Errorf("parse redis url: %w", err)
	}

	tlsConfig := opt.TLSConfig
	if cfg.GetRedisTLSInsecure() {
		if tlsConfig == nil {
			tlsConfig = &tls.Config{}
		} else {
			tlsConfig = tlsConfig.Clone()
		}
		tlsConfig.InsecureSkipVerify = true
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Username:  opt.Username,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: tlsConfig,
	}, nil
}
