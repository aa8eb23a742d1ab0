package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

type TaskDistributor interface {
	DistributeTaskNotifyTransferStatus(
		ctx context.Context,
		payload *PayloadNotifyTransferStatus,
		opts ...asynq.Option,
	) error
	DistributeTaskCleanupRateSync(
		ctx context.Context,
		opts ...asynq.Option,
	) error
}

type RedisTaskDistributor struct {
	client *asynq.Client
}

func NewRedisTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)

	return &RedisTaskDistributor{
		client: client,
	}
}
