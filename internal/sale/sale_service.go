package sale

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	saleerrors "go-engnet/internal/sale/errors"
	"go-engnet/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=sale_service.go -destination=mock/sale_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSaleRequest) (SaleResponse, error)
	GetAll(ctx context.Context) ([]SaleResponse, error)
	GetByID(ctx context.Context, id string) (SaleResponse, error)
	Update(ctx context.Context, id string, req UpdateSaleRequest) (SaleResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("sale.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sale.service")
	}
	return &service{repo: repo, counter: counterRepo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateSaleRequest) (SaleResponse, error) {
	if !req.ValorVenda.IsPositive() {
		return SaleResponse{}, saleerrors.ErrInvalidAmount
	}
	if !isKnownCategory(req.Categoria) {
		return SaleResponse{}, saleerrors.ErrInvalidCategory
	}
	saleDate, err := time.Parse("2006-01-02", req.DataVenda)
	if err != nil {
		return SaleResponse{}, saleerrors.ErrInvalidDateFormat
	}

	clientID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return SaleResponse{}, saleerrors.ErrClientNotFound
	}
	exists, err := s.repo.ClientExists(ctx, req.ClienteID)
	if err != nil {
		return SaleResponse{}, err
	}
	if !exists {
		return SaleResponse{}, saleerrors.ErrClientNotFound
	}

	seq, err := s.counter.GetNextValue(ctx, counter.TypeSale)
	if err != nil {
		s.logger.Error("sale code allocation failed", zap.Error(err))
		return SaleResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusProcessing
	}

	sl := &Sale{
		ID:         uuid.New(),
		Code:       fmt.Sprintf("V%03d", seq),
		ClientID:   clientID,
		SellerName: req.NomeVendedor,
		Category:   req.Categoria,
		Amount:     req.ValorVenda,
		SaleDate:   saleDate,
		Status:     status,
		About:      req.Descricao,
	}

	if err := s.repo.Create(ctx, sl); err != nil {
		s.logger.Error("create sale persist failed", zap.Error(err))
		return SaleResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create sale success",
		zap.String("sale_id", sl.ID.String()),
		zap.String("code", sl.Code),
	)
	return mapToResponse(*sl), nil
}

func (s *service) GetAll(ctx context.Context) ([]SaleResponse, error) {
	sales, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]SaleResponse, len(sales))
	for i, sl := range sales {
		resp[i] = mapToResponse(sl)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (SaleResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SaleResponse{}, saleerrors.ErrInvalidSaleID
	}

	sl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SaleResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*sl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateSaleRequest) (SaleResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SaleResponse{}, saleerrors.ErrInvalidSaleID
	}

	sl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SaleResponse{}, mapRepositoryError(err)
	}

	if req.ValorVenda != nil {
		if !req.ValorVenda.IsPositive() {
			return SaleResponse{}, saleerrors.ErrInvalidAmount
		}
		sl.Amount = *req.ValorVenda
	}
	if req.Categoria != nil {
		if !isKnownCategory(*req.Categoria) {
			return SaleResponse{}, saleerrors.ErrInvalidCategory
		}
		sl.Category = *req.Categoria
	}
	if req.DataVenda != nil {
		saleDate, err := time.Parse("2006-01-02", *req.DataVenda)
		if err != nil {
			return SaleResponse{}, saleerrors.ErrInvalidDateFormat
		}
		sl.SaleDate = saleDate
	}
	if req.NomeVendedor != nil {
		sl.SellerName = *req.NomeVendedor
	}
	if req.Status != nil {
		sl.Status = *req.Status
	}
	if req.Descricao != nil {
		sl.About = *req.Descricao
	}

	if err := s.repo.Update(ctx, sl); err != nil {
		s.logger.Error("update sale persist failed", zap.String("sale_id", id), zap.Error(err))
		return SaleResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update sale success", zap.String("sale_id", id))
	return mapToResponse(*sl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return saleerrors.ErrInvalidSaleID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("delete sale failed", zap.String("sale_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete sale success", zap.String("sale_id", id))
	return nil
}

func isKnownCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return saleerrors.ErrSaleNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return saleerrors.ErrSaleHasTransactions
	}

	if strings.Contains(strings.ToLower(err.Error()), "violates foreign key constraint") {
		return saleerrors.ErrSaleHasTransactions
	}

	return err
}

func mapToResponse(s Sale) SaleResponse {
	return SaleResponse{
		ID:                s.ID.String(),
		NumeroVenda:       s.Code,
		ClienteID:         s.ClientID.String(),
		NomeVendedor:      s.SellerName,
		Categoria:         s.Category,
		ValorVenda:        s.Amount,
		DataVenda:         s.SaleDate.Format("2006-01-02"),
		Status:            s.Status,
		Descricao:         s.About,
		DataCriacao:       s.CreatedAt.Format(time.RFC3339),
		UltimaAtualizacao: s.UpdatedAt.Format(time.RFC3339),
	}
}
