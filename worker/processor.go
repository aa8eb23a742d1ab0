package worker

import (
	"context"

	db "github.com/ChokeGuy/exchange-office/db/sqlc"
	pkg "github.com/ChokeGuy/exchange-office/pkg/config"
	"github.com/ChokeGuy/exchange-office/pkg/email"
	"github.com/ChokeGuy/exchange-office/pkg/logger"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

type TaskProcessor interface {
	Start() error
	ProcessTaskNotifyTransferStatus(ctx context.Context, task *asynq.Task) error
	ProcessTaskCleanupRateSync(ctx context.Context, task *asynq.Task) error
}

type RedisTaskProcessor struct {
	server *asynq.Server
	store  db.Store
	mailer email.EmailSender
}

func NewRedisTaskProcessor(redisOpt asynq.RedisClientOpt, store db.Store, mailer email.EmailSender) TaskProcessor {
	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().
					Err(err).
					Str("task_type", task.Type()).
					Bytes("task_payload", task.Payload()).
					Msg("process task failed")
			}),
			Logger: logger.TaskLogger(),
		},
	)

	return &RedisTaskProcessor{
		server: server,
		store:  store,
		mailer: mailer,
	}
}

func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskNotifyTransferStatus, processor.ProcessTaskNotifyTransferStatus)
	mux.HandleFunc(TaskCleanupRateSync, processor.ProcessTaskCleanupRateSync)

	return processor.server.Start(mux)
}

// RunTaskProcessor run redis task processor
func RunTaskProcessor(cf pkg.Config, redisOpt asynq.RedisClientOpt, store db.Store) {
	var mailer email.EmailSender
	if cf.AWSRegion != "" {
		var err error
		mailer, err = email.NewSesEmailSender(cf)
		if err != nil {
			log.Fatal().Msgf("cannot create email sender: %v", err)
		}
	} else {
		mailer = email.NewSmtpSender(cf)
	}

	taskProcessor := NewRedisTaskProcessor(redisOpt, store, mailer)
	log.Info().Msg("start task processor")

	if err := taskProcessor.Start(); err != nil {
		log.Fatal().Err(err).Msg("fail to start task processor")
	}
}
