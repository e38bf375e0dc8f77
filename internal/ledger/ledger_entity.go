package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entry is an accounting ledger row derived from an approved reimbursement.
// One entry per reimbursement; the unique index makes event replay harmless
// and the FK keeps a decided reimbursement from being deleted underneath it.
type Entry struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReimbursementID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_ledger_entries_reimbursement"`
	Code            string          `gorm:"type:varchar(20);not null"`
	EmployeeName    string          `gorm:"type:varchar(255);not null"`
	Category        string          `gorm:"type:varchar(60);not null"`
	Amount          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	EntryType       string          `gorm:"type:varchar(30);not null;default:'REEMBOLSO'"`
	Description     string          `gorm:"type:text"`

	CreatedAt time.Time
}

func (Entry) TableName() string {
	return "ledger_entries"
}

const EntryTypeReimbursement = "REEMBOLSO"
