package reimbursement

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=reimbursement_repo.go -destination=mock/reimbursement_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Reimbursement) error
	FindAll(ctx context.Context) ([]Reimbursement, error)
	FindByID(ctx context.Context, id string) (*Reimbursement, error)
	Update(ctx context.Context, r *Reimbursement) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, rb *Reimbursement) error {
	return r.db.WithContext(ctx).Create(rb).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Reimbursement, error) {
	var reimbursements []Reimbursement
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reimbursements).Error
	return reimbursements, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Reimbursement, error) {
	var rb Reimbursement
	err := r.db.WithContext(ctx).First(&rb, "id = ?", id).Error
	return &rb, err
}

// Update writes through the open transaction when one is set so a status
// change and its outbox event commit or roll back together.
func (r *repository) Update(ctx context.Context, rb *Reimbursement) error {
	if r.tx == nil {
		return r.db.WithContext(ctx).Save(rb).Error
	}

	query := `
UPDATE reimbursements
SET
	owner_name = $2,
	category = $3,
	description = $4,
	justification = $5,
	amount = $6,
	expense_date = $7,
	attachment = $8,
	status = $9,
	decided_by = $10,
	decided_at = $11,
	updated_at = NOW()
WHERE id = $1
`
	_, err := r.tx.ExecContext(
		ctx, query,
		rb.ID, rb.OwnerName, rb.Category, rb.Description, rb.Justification,
		rb.Amount, rb.ExpenseDate, rb.Attachment, rb.Status, rb.DecidedBy, rb.DecidedAt,
	)
	return err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Reimbursement{}, "id = ?", id).Error
}
