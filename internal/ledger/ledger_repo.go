package ledger

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=ledger_repo.go -destination=mock/ledger_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	FindAll(ctx context.Context) ([]Entry, error)
	FindByReimbursementID(ctx context.Context, reimbursementID string) (*Entry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindByReimbursementID(ctx context.Context, reimbursementID string) (*Entry, error) {
	var e Entry
	err := r.db.WithContext(ctx).
		First(&e, "reimbursement_id = ?", reimbursementID).Error
	return &e, err
}
