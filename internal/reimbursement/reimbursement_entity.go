package reimbursement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Reimbursement struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code          string          `gorm:"type:varchar(20);uniqueIndex:uq_reimbursements_code;not null"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_reimbursements_owner"`
	OwnerName     string          `gorm:"type:varchar(255);not null"`
	Category      string          `gorm:"type:varchar(60);not null"`
	Description   string          `gorm:"type:text"`
	Justification string          `gorm:"type:text"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ExpenseDate   time.Time       `gorm:"type:date;not null"`
	Attachment    *string         `gorm:"type:varchar(512)"`
	Status        string          `gorm:"type:varchar(20);not null;default:'DRAFT';index:idx_reimbursements_status"`
	DecidedBy     *uuid.UUID      `gorm:"type:uuid"`
	DecidedAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	StatusDraft    = "DRAFT"
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Categories mirror the expense catalog the dashboard offers.
var Categories = []string{
	"Combustível",
	"Alimentação",
	"Transporte",
	"Hospedagem",
	"Material de Escritório",
	"Outros",
}

func isTerminalStatus(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

func isAllowedStatusTransition(currentStatus, targetStatus string) bool {
	if currentStatus == targetStatus {
		return !isTerminalStatus(currentStatus)
	}

	switch currentStatus {
	case StatusDraft:
		return targetStatus == StatusPending
	case StatusPending:
		return targetStatus == StatusApproved || targetStatus == StatusRejected
	default:
		return false
	}
}
