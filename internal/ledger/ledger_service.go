package ledger

import (
	"context"
	"errors"
	"strings"

	"go-engnet/internal/events"
	"go-engnet/internal/reimbursement"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledger_service.go -destination=mock/ledger_service_mock.go -package=mock
type Service interface {
	CreateFromDecision(ctx context.Context, event events.ReimbursementDecidedEvent) error
	GetAll(ctx context.Context) ([]Entry, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("ledger.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.service")
	}
	return &service{repo: repo, logger: l}
}

// CreateFromDecision records an approved reimbursement in the ledger. Rejected
// decisions are acknowledged without an entry. Replayed events hit the unique
// index on reimbursement_id and are skipped.
func (s *service) CreateFromDecision(ctx context.Context, event events.ReimbursementDecidedEvent) error {
	if event.Status != reimbursement.StatusApproved {
		s.logger.Debug("skipping non-approval decision",
			zap.String("reimbursement_id", event.ReimbursementID),
			zap.String("status", event.Status),
		)
		return nil
	}

	reimbursementID, err := uuid.Parse(event.ReimbursementID)
	if err != nil {
		return err
	}

	entry := &Entry{
		ID:              uuid.New(),
		ReimbursementID: reimbursementID,
		Code:            event.Codigo,
		EmployeeName:    event.NomeFuncionario,
		Category:        event.Categoria,
		Amount:          event.Valor,
		EntryType:       EntryTypeReimbursement,
		Description:     "Reembolso aprovado por " + event.DecididoPor,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		if isDuplicateEntry(err) {
			s.logger.Warn("ledger entry already exists, skipping",
				zap.String("reimbursement_id", event.ReimbursementID),
			)
			return nil
		}
		s.logger.Error("create ledger entry failed",
			zap.String("reimbursement_id", event.ReimbursementID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("ledger entry created",
		zap.String("entry_id", entry.ID.String()),
		zap.String("reimbursement_id", event.ReimbursementID),
		zap.String("code", event.Codigo),
	)
	return nil
}

func (s *service) GetAll(ctx context.Context) ([]Entry, error) {
	return s.repo.FindAll(ctx)
}

func isDuplicateEntry(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_ledger_entries_reimbursement"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_ledger_entries_reimbursement")
}
