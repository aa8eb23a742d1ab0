package worker

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ChokeGuy/exchange-office/pkg/email"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	TaskNotifyTransferStatus = "task:notify_transfer_status"
)

type PayloadNotifyTransferStatus struct {
	TransferID uuid.UUID `json:"transferId"`
	Status     string    `json:"status"`
}

func (distributor *RedisTaskDistributor) DistributeTaskNotifyTransferStatus(
	ctx context.Context,
	payload *PayloadNotifyTransferStatus,
	opts ...asynq.Option,
) error {

	jsonPayload, err := json.Marshal(payload)

	if err != nil {
		return fmt.Errorf("fail to marshal payload: %v", err)
	}
	task := asynq.NewTask(TaskNotifyTransferStatus, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)

	if err != nil {
		return fmt.Errorf("fail to enqueue task: %v", err)
	}

	log.Info().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int("max_retry", info.MaxRetry).
		Msg("enqueued task")

	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskNotifyTransferStatus(ctx context.Context, task *asynq.Task) error {
	var payload PayloadNotifyTransferStatus

	err := json.Unmarshal(task.Payload(), &payload)
	if err != nil {
		return fmt.Errorf("fail to unmarshal payload: %w", asynq.SkipRetry)
	}

	transfer, err := processor.store.GetTransfer(ctx, payload.TransferID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("transfer not found: %w", asynq.SkipRetry)
		}
		return fmt.Errorf("fail to get transfer: %w", err)
	}

	currency, err := processor.store.GetCurrency(ctx, transfer.CurrencyID)

	if err != nil {
		return fmt.Errorf("fail to get currency: %w", err)
	}

	receivers := processor.branchContacts(ctx, transfer.SourceID, transfer.DestinationID)

	if len(receivers) == 0 {
		log.Info().
			Str("transfer_id", transfer.ID.String()).
			Msg("no branch contacts to notify")
		return nil
	}

	emailPayload := email.EmailPayload{
		Subject: fmt.Sprintf("Transfer %s is now %s", transfer.ReferenceNumber.String, transfer.Status),
		Content: fmt.Sprintf(`Hello, <br/>
		Transfer <b>%s</b> of %s %s has moved to status <b>%s</b>.<br/>
		`, transfer.ID, transfer.Amount, currency.Code, transfer.Status),
		To: receivers,
	}

	if err := processor.mailer.SendEmail(emailPayload); err != nil {
		return fmt.Errorf("fail to send email: %w", err)
	}

	log.Info().
		Str("type", task.Type()).
		Bytes("payload", task.Payload()).
		Strs("receivers", receivers).
		Msg("processed task")

	return nil
}

// branchContacts resolves contact emails for the endpoints that are
// branches. Vault endpoints have nobody to mail and are skipped.
func (processor *RedisTaskProcessor) branchContacts(ctx context.Context, ids ...uuid.UUID) []string {
	var receivers []string
	seen := make(map[string]bool)

	for _, id := range ids {
		branch, err := processor.store.GetBranch(ctx, id)
		if err != nil {
			continue
		}
		if !branch.ContactEmail.Valid || seen[branch.ContactEmail.String] {
			continue
		}
		seen[branch.ContactEmail.String] = true
		receivers = append(receivers, branch.ContactEmail.String)
	}

	return receivers
}
