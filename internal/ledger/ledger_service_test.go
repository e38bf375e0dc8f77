package ledger_test

import (
	"context"
	"testing"
	"time"

	"go-engnet/internal/events"
	"go-engnet/internal/ledger"
	"go-engnet/internal/reimbursement"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLedgerRepository struct {
	createFn func(ctx context.Context, e *ledger.Entry) error
	entries  []ledger.Entry
}

func (f *fakeLedgerRepository) Create(ctx context.Context, e *ledger.Entry) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeLedgerRepository) FindAll(ctx context.Context) ([]ledger.Entry, error) {
	return f.entries, nil
}

func (f *fakeLedgerRepository) FindByReimbursementID(ctx context.Context, reimbursementID string) (*ledger.Entry, error) {
	for i := range f.entries {
		if f.entries[i].ReimbursementID.String() == reimbursementID {
			return &f.entries[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func approvalEvent() events.ReimbursementDecidedEvent {
	return events.ReimbursementDecidedEvent{
		EventType:       events.EventTypeReimbursementDecided,
		ReimbursementID: uuid.New().String(),
		Codigo:          "R042",
		IDFuncionario:   uuid.New().String(),
		NomeFuncionario: "Maria Souza",
		Categoria:       "Transporte",
		Valor:           decimal.NewFromFloat(89.90),
		Status:          reimbursement.StatusApproved,
		DecididoPor:     uuid.New().String(),
		OccurredAt:      time.Now().UTC(),
	}
}

func TestLedgerService_CreateFromDecision(t *testing.T) {
	ctx := context.Background()

	t.Run("approval creates an entry", func(t *testing.T) {
		repo := &fakeLedgerRepository{}
		svc := ledger.NewService(repo)
		event := approvalEvent()

		err := svc.CreateFromDecision(ctx, event)

		assert.NoError(t, err)
		assert.Len(t, repo.entries, 1)
		entry := repo.entries[0]
		assert.Equal(t, event.ReimbursementID, entry.ReimbursementID.String())
		assert.Equal(t, "R042", entry.Code)
		assert.Equal(t, ledger.EntryTypeReimbursement, entry.EntryType)
		assert.True(t, entry.Amount.Equal(event.Valor))
	})

	t.Run("rejection is acknowledged without entry", func(t *testing.T) {
		repo := &fakeLedgerRepository{}
		svc := ledger.NewService(repo)
		event := approvalEvent()
		event.Status = reimbursement.StatusRejected

		err := svc.CreateFromDecision(ctx, event)

		assert.NoError(t, err)
		assert.Empty(t, repo.entries)
	})

	t.Run("replayed approval is skipped", func(t *testing.T) {
		repo := &fakeLedgerRepository{
			createFn: func(ctx context.Context, e *ledger.Entry) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_ledger_entries_reimbursement"}
			},
		}
		svc := ledger.NewService(repo)

		err := svc.CreateFromDecision(ctx, approvalEvent())

		assert.NoError(t, err)
	})

	t.Run("malformed reimbursement id fails", func(t *testing.T) {
		svc := ledger.NewService(&fakeLedgerRepository{})
		event := approvalEvent()
		event.ReimbursementID = "not-a-uuid"

		err := svc.CreateFromDecision(ctx, event)

		assert.Error(t, err)
	})
}
