package worker

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	TaskCleanupRateSync = "task:cleanup_rate_sync"
)

func (distributor *RedisTaskDistributor) DistributeTaskCleanupRateSync(
	ctx context.Context,
	opts ...asynq.Option,
) error {

	task := asynq.NewTask(TaskCleanupRateSync, nil, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)

	if err != nil {
		return fmt.Errorf("fail to enqueue task: %v", err)
	}

	log.Info().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Msg("enqueued task")

	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskCleanupRateSync(ctx context.Context, task *asynq.Task) error {
	expired, err := processor.store.ExpireRateSyncRequests(ctx)

	if err != nil {
		return fmt.Errorf("fail to expire rate sync requests: %w", err)
	}

	if expired > 0 {
		log.Info().
			Str("type", task.Type()).
			Int64("expired", expired).
			Msg("expired stale rate sync requests")
	}

	return nil
}
