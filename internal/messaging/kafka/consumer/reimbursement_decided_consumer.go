package consumer

import (
	"context"
	"encoding/json"

	"go-engnet/internal/events"
	"go-engnet/internal/ledger"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeReimbursementDecided turns approval events into ledger entries. The
// ledger service is idempotent on reimbursement_id, so at-least-once delivery
// is safe.
func ConsumeReimbursementDecided(
	ctx context.Context,
	reader *kafkago.Reader,
	ledgerService ledger.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.reimbursement_decided")
	log.Info("reimbursement decided consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("reimbursement decided consumer stopped")
				return
			}
			log.Error("fetch reimbursement decided message failed", zap.Error(err))
			continue
		}

		var event events.ReimbursementDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode reimbursement decided event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := ledgerService.CreateFromDecision(ctx, event); err != nil {
			log.Error("create ledger entry from decision failed",
				zap.String("reimbursement_id", event.ReimbursementID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit reimbursement decided message failed", zap.Error(err))
			continue
		}

		log.Info("reimbursement decision processed",
			zap.String("reimbursement_id", event.ReimbursementID),
			zap.String("status", event.Status),
		)
	}
}
