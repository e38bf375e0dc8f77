package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const ReimbursementDecidedTopic = "engnet.reimbursement.decided.v1"

const (
	EventTypeReimbursementDecided = "reimbursement.decided"
)

// ReimbursementDecidedEvent is emitted whenever an administrator approves or
// rejects a reimbursement. Field names follow the dashboard wire format.
type ReimbursementDecidedEvent struct {
	EventType       string          `json:"event_type"`
	ReimbursementID string          `json:"idReembolso"`
	Codigo          string          `json:"codigo"`
	IDFuncionario   string          `json:"idFuncionario"`
	NomeFuncionario string          `json:"nomeFuncionario"`
	Categoria       string          `json:"categoria"`
	Valor           decimal.Decimal `json:"valor"`
	Status          string          `json:"status"`
	DecididoPor     string          `json:"decididoPor"`
	OccurredAt      time.Time       `json:"occurred_at"`
}
