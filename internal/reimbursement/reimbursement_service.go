package reimbursement

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-engnet/internal/events"
	"go-engnet/internal/messaging/kafka"
	reimbursementerrors "go-engnet/internal/reimbursement/errors"
	"go-engnet/internal/shared/contextutil"
	"go-engnet/internal/shared/counter"
	"go-engnet/internal/shared/identity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=reimbursement_service.go -destination=mock/reimbursement_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor identity.Actor, req CreateReimbursementRequest) (ReimbursementResponse, error)
	GetAll(ctx context.Context) ([]ReimbursementResponse, error)
	GetByID(ctx context.Context, id string) (ReimbursementResponse, error)
	UpdateContent(ctx context.Context, actor identity.Actor, id string, req UpdateReimbursementRequest) (ReimbursementResponse, error)
	Decide(ctx context.Context, actor identity.Actor, id, targetStatus string) (ReimbursementResponse, error)
	Delete(ctx context.Context, actor identity.Actor, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("reimbursement.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reimbursement.service")
	}
	return &service{db: db, repo: repo, counter: counterRepo, outbox: outbox, logger: l}
}

// validateContent checks the submission constraints in a fixed order so the
// caller always learns the first unmet one: amount, then description, then
// expense date, then category.
func validateContent(amount decimal.Decimal, description, expenseDate, category string) (time.Time, error) {
	if !amount.IsPositive() {
		return time.Time{}, reimbursementerrors.ErrInvalidAmount
	}
	if strings.TrimSpace(description) == "" {
		return time.Time{}, reimbursementerrors.ErrDescriptionRequired
	}
	parsed, err := time.Parse("2006-01-02", expenseDate)
	if err != nil {
		return time.Time{}, reimbursementerrors.ErrInvalidDateFormat
	}
	if !isKnownCategory(category) {
		return time.Time{}, reimbursementerrors.ErrInvalidCategory
	}
	return parsed, nil
}

func isKnownCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func (s *service) Create(ctx context.Context, actor identity.Actor, req CreateReimbursementRequest) (ReimbursementResponse, error) {
	s.logger.Debug("create reimbursement requested",
		zap.String("actor_id", actor.ID),
		zap.String("categoria", req.Categoria),
		zap.String("status", req.Status),
	)

	ownerID, err := uuid.Parse(actor.ID)
	if err != nil {
		return ReimbursementResponse{}, reimbursementerrors.ErrInvalidReimbursementID
	}

	expenseDate, err := validateContent(req.Valor, req.Descricao, req.DataDespesa, req.Categoria)
	if err != nil {
		s.logger.Warn("create reimbursement validation failed", zap.Error(err))
		return ReimbursementResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusDraft
	}

	seq, err := s.counter.GetNextValue(ctx, counter.TypeReimbursement)
	if err != nil {
		s.logger.Error("reimbursement code allocation failed", zap.Error(err))
		return ReimbursementResponse{}, err
	}

	rb := &Reimbursement{
		ID:            uuid.New(),
		Code:          fmt.Sprintf("R%03d", seq),
		OwnerID:       ownerID,
		OwnerName:     actor.Name,
		Category:      req.Categoria,
		Description:   req.Descricao,
		Justification: req.Justificativa,
		Amount:        req.Valor,
		ExpenseDate:   expenseDate,
		Attachment:    req.Anexo,
		Status:        status,
	}

	if err := s.repo.Create(ctx, rb); err != nil {
		s.logger.Error("create reimbursement persist failed", zap.Error(err))
		return ReimbursementResponse{}, err
	}

	s.logger.Info("create reimbursement success",
		zap.String("reimbursement_id", rb.ID.String()),
		zap.String("code", rb.Code),
		zap.String("status", rb.Status),
	)
	return mapToResponse(*rb), nil
}

func (s *service) GetAll(ctx context.Context) ([]ReimbursementResponse, error) {
	reimbursements, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ReimbursementResponse, len(reimbursements))
	for i, rb := range reimbursements {
		resp[i] = mapToResponse(rb)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ReimbursementResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ReimbursementResponse{}, reimbursementerrors.ErrInvalidReimbursementID
	}

	rb, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReimbursementResponse{}, reimbursementerrors.ErrReimbursementNotFound
		}
		return ReimbursementResponse{}, err
	}
	return mapToResponse(*rb), nil
}

func (s *service) UpdateContent(ctx context.Context, actor identity.Actor, id string, req UpdateReimbursementRequest) (ReimbursementResponse, error) {
	s.logger.Debug("update reimbursement requested",
		zap.String("reimbursement_id", id),
		zap.String("actor_id", actor.ID),
	)

	if _, err := uuid.Parse(id); err != nil {
		return ReimbursementResponse{}, reimbursementerrors.ErrInvalidReimbursementID
	}

	rb, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReimbursementResponse{}, reimbursementerrors.ErrReimbursementNotFound
		}
		return ReimbursementResponse{}, err
	}

	if !actor.IsAdmin() && !actor.Owns(rb.OwnerID.String()) {
		s.logger.Warn("update reimbursement forbidden",
			zap.String("reimbursement_id", id),
			zap.String("actor_id", actor.ID),
		)
		return ReimbursementResponse{}, reimbursementerrors.ErrNotOwner
	}
	if isTerminalStatus(rb.Status) {
		return ReimbursementResponse{}, reimbursementerrors.ErrTerminalRecordImmutable
	}

	if req.Categoria != nil {
		rb.Category = *req.Categoria
	}
	if req.Descricao != nil {
		rb.Description = *req.Descricao
	}
	if req.Justificativa != nil {
		rb.Justification = *req.Justificativa
	}
	if req.Valor != nil {
		rb.Amount = *req.Valor
	}
	if req.Anexo != nil {
		rb.Attachment = req.Anexo
	}

	expenseDate := rb.ExpenseDate.Format("2006-01-02")
	if req.DataDespesa != nil {
		expenseDate = *req.DataDespesa
	}
	parsedDate, err := validateContent(rb.Amount, rb.Description, expenseDate, rb.Category)
	if err != nil {
		s.logger.Warn("update reimbursement validation failed",
			zap.String("reimbursement_id", id),
			zap.Error(err),
		)
		return ReimbursementResponse{}, err
	}
	rb.ExpenseDate = parsedDate

	if req.Status != nil && *req.Status != rb.Status {
		if !isAllowedStatusTransition(rb.Status, *req.Status) {
			return ReimbursementResponse{}, reimbursementerrors.ErrInvalidStatusTransition
		}
		rb.Status = *req.Status
	}

	if err := s.repo.Update(ctx, rb); err != nil {
		s.logger.Error("update reimbursement persist failed",
			zap.String("reimbursement_id", id),
			zap.Error(err),
		)
		return ReimbursementResponse{}, err
	}

	s.logger.Info("update reimbursement success",
		zap.String("reimbursement_id", id),
		zap.String("status", rb.Status),
	)
	return mapToResponse(*rb), nil
}

func (s *service) Decide(ctx context.Context, actor identity.Actor, id, targetStatus string) (ReimbursementResponse, error) {
	s.logger.Debug("decide reimbursement requested",
		zap.String("reimbursement_id", id),
		zap.String("actor_id", actor.ID),
		zap.String("target_status", targetStatus),
	)

	if !actor.IsAdmin() {
		s.logger.Warn("decide reimbursement forbidden",
			zap.String("reimbursement_id", id),
			zap.String("actor_id", actor.ID),
		)
		return ReimbursementResponse{}, reimbursementerrors.ErrDecisionRequiresAdmin
	}
	if _, err := uuid.Parse(id); err != nil {
		return ReimbursementResponse{}, reimbursementerrors.ErrInvalidReimbursementID
	}
	actorUUID, err := uuid.Parse(actor.ID)
	if err != nil {
		return ReimbursementResponse{}, reimbursementerrors.ErrInvalidReimbursementID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide reimbursement begin tx failed", zap.Error(err))
		return ReimbursementResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rb, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReimbursementResponse{}, reimbursementerrors.ErrReimbursementNotFound
		}
		return ReimbursementResponse{}, err
	}

	if rb.Status != StatusPending || !isAllowedStatusTransition(rb.Status, targetStatus) {
		s.logger.Warn("decide reimbursement invalid transition",
			zap.String("reimbursement_id", id),
			zap.String("from_status", rb.Status),
			zap.String("to_status", targetStatus),
		)
		return ReimbursementResponse{}, reimbursementerrors.ErrInvalidStatusTransition
	}

	now := time.Now().UTC()
	rb.Status = targetStatus
	rb.DecidedBy = &actorUUID
	rb.DecidedAt = &now

	if err := qtx.Update(ctx, rb); err != nil {
		s.logger.Error("decide reimbursement persist failed",
			zap.String("reimbursement_id", id),
			zap.Error(err),
		)
		return ReimbursementResponse{}, err
	}

	payload, err := json.Marshal(events.ReimbursementDecidedEvent{
		EventType:       events.EventTypeReimbursementDecided,
		ReimbursementID: rb.ID.String(),
		Codigo:          rb.Code,
		IDFuncionario:   rb.OwnerID.String(),
		NomeFuncionario: rb.OwnerName,
		Categoria:       rb.Category,
		Valor:           rb.Amount,
		Status:          rb.Status,
		DecididoPor:     actor.ID,
		OccurredAt:      now,
	})
	if err != nil {
		return ReimbursementResponse{}, err
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "reimbursement",
		AggregateID:   rb.ID.String(),
		EventType:     events.EventTypeReimbursementDecided,
		Topic:         events.ReimbursementDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		s.logger.Error("decide reimbursement outbox insert failed",
			zap.String("reimbursement_id", id),
			zap.Error(err),
		)
		return ReimbursementResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide reimbursement commit failed",
			zap.String("reimbursement_id", id),
			zap.Error(err),
		)
		return ReimbursementResponse{}, err
	}

	s.logger.Info("decide reimbursement success",
		zap.String("reimbursement_id", id),
		zap.String("status", targetStatus),
		zap.String("decided_by", actor.ID),
	)
	return mapToResponse(*rb), nil
}

func (s *service) Delete(ctx context.Context, actor identity.Actor, id string) error {
	if !actor.IsAdmin() {
		return reimbursementerrors.ErrDecisionRequiresAdmin
	}
	if _, err := uuid.Parse(id); err != nil {
		return reimbursementerrors.ErrInvalidReimbursementID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("delete reimbursement failed",
			zap.String("reimbursement_id", id),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.logger.Info("delete reimbursement success", zap.String("reimbursement_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return reimbursementerrors.ErrReimbursementNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return reimbursementerrors.ErrHasLinkedEntries
	}

	if strings.Contains(strings.ToLower(err.Error()), "violates foreign key constraint") {
		return reimbursementerrors.ErrHasLinkedEntries
	}

	return err
}

func mapToResponse(rb Reimbursement) ReimbursementResponse {
	resp := ReimbursementResponse{
		ID:                rb.ID.String(),
		Codigo:            rb.Code,
		IDFuncionario:     rb.OwnerID.String(),
		NomeFuncionario:   rb.OwnerName,
		Categoria:         rb.Category,
		Descricao:         rb.Description,
		Justificativa:     rb.Justification,
		Valor:             rb.Amount,
		DataDespesa:       rb.ExpenseDate.Format("2006-01-02"),
		Anexo:             rb.Attachment,
		Status:            rb.Status,
		DataCriacao:       rb.CreatedAt.Format(time.RFC3339),
		UltimaAtualizacao: rb.UpdatedAt.Format(time.RFC3339),
	}
	if rb.DecidedBy != nil {
		decidedBy := rb.DecidedBy.String()
		resp.DecididoPor = &decidedBy
	}
	if rb.DecidedAt != nil {
		decidedAt := rb.DecidedAt.UTC().Format(time.RFC3339)
		resp.DataDecisao = &decidedAt
	}
	return resp
}
