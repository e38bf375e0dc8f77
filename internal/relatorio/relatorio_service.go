package relatorio

import (
	"context"
	"errors"
	"time"

	relatorioerrors "go-engnet/internal/relatorio/errors"
	"go-engnet/internal/shared/identity"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

//go:generate mockgen -source=relatorio_service.go -destination=mock/relatorio_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor identity.Actor, req CreateReportRequest) (ReportResponse, error)
	List(ctx context.Context, q ListQuery) ([]ReportResponse, int64, ListQuery, error)
	GetByID(ctx context.Context, id string) (ReportResponse, error)
	Update(ctx context.Context, actor identity.Actor, id string, req UpdateReportRequest) (ReportResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("relatorio.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("relatorio.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, actor identity.Actor, req CreateReportRequest) (ReportResponse, error) {
	if err := validateClassification(req.Categoria, req.Tipo, req.Periodo); err != nil {
		return ReportResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusProcessing
	}
	if !contains(Statuses, status) {
		return ReportResponse{}, relatorioerrors.ErrInvalidStatus
	}

	rep := &Report{
		ID:          uuid.New(),
		Name:        req.Nome,
		Category:    req.Categoria,
		Type:        req.Tipo,
		Period:      req.Periodo,
		Status:      status,
		Description: req.Descricao,
		Size:        req.Tamanho,
		FilePath:    req.CaminhoArquivo,
		CreatedBy:   actor.Name,
	}

	if err := s.repo.Create(ctx, rep); err != nil {
		s.logger.Error("create report persist failed", zap.Error(err))
		return ReportResponse{}, err
	}

	s.logger.Info("create report success",
		zap.String("report_id", rep.ID.String()),
		zap.String("category", rep.Category),
	)
	return mapToResponse(*rep), nil
}

// List returns the requested page, the unfiltered-match total and the
// normalized query (so the handler reports the effective page and limit).
func (s *service) List(ctx context.Context, q ListQuery) ([]ReportResponse, int64, ListQuery, error) {
	if q.Pagina < 1 {
		q.Pagina = 1
	}
	if q.Limite < 1 {
		q.Limite = defaultPageLimit
	}
	if q.Limite > maxPageLimit {
		q.Limite = maxPageLimit
	}

	reports, total, err := s.repo.FindPage(ctx, q)
	if err != nil {
		return nil, 0, q, err
	}

	resp := make([]ReportResponse, len(reports))
	for i, rep := range reports {
		resp[i] = mapToResponse(rep)
	}
	return resp, total, q, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ReportResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ReportResponse{}, relatorioerrors.ErrInvalidReportID
	}

	rep, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ReportResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*rep), nil
}

func (s *service) Update(ctx context.Context, actor identity.Actor, id string, req UpdateReportRequest) (ReportResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ReportResponse{}, relatorioerrors.ErrInvalidReportID
	}

	rep, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ReportResponse{}, mapRepositoryError(err)
	}

	if req.Nome != nil {
		rep.Name = *req.Nome
	}
	if req.Categoria != nil {
		rep.Category = *req.Categoria
	}
	if req.Tipo != nil {
		rep.Type = *req.Tipo
	}
	if req.Periodo != nil {
		rep.Period = *req.Periodo
	}
	// Category and type are revalidated together: changing either may break
	// the pairing.
	if err := validateClassification(rep.Category, rep.Type, rep.Period); err != nil {
		return ReportResponse{}, err
	}
	if req.Status != nil {
		if !contains(Statuses, *req.Status) {
			return ReportResponse{}, relatorioerrors.ErrInvalidStatus
		}
		rep.Status = *req.Status
	}
	if req.Descricao != nil {
		rep.Description = *req.Descricao
	}
	if req.Tamanho != nil {
		rep.Size = *req.Tamanho
	}
	if req.CaminhoArquivo != nil {
		rep.FilePath = req.CaminhoArquivo
	}
	rep.UpdatedBy = &actor.Name

	if err := s.repo.Update(ctx, rep); err != nil {
		s.logger.Error("update report persist failed", zap.String("report_id", id), zap.Error(err))
		return ReportResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update report success", zap.String("report_id", id))
	return mapToResponse(*rep), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return relatorioerrors.ErrInvalidReportID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("delete report failed", zap.String("report_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete report success", zap.String("report_id", id))
	return nil
}

func validateClassification(category, reportType, period string) error {
	types, ok := TypesByCategory[category]
	if !ok {
		return relatorioerrors.ErrInvalidCategory
	}
	if !contains(types, reportType) {
		return relatorioerrors.ErrTypeOutsideCategory
	}
	if !contains(Periods, period) {
		return relatorioerrors.ErrInvalidPeriod
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return relatorioerrors.ErrReportNotFound
	}
	return err
}

func mapToResponse(rep Report) ReportResponse {
	resp := ReportResponse{
		ID:                rep.ID.String(),
		Nome:              rep.Name,
		Categoria:         rep.Category,
		Tipo:              rep.Type,
		Periodo:           rep.Period,
		Status:            rep.Status,
		Descricao:         rep.Description,
		Tamanho:           rep.Size,
		CaminhoArquivo:    rep.FilePath,
		UsuarioCriacao:    rep.CreatedBy,
		UsuarioEdicao:     rep.UpdatedBy,
		DataCriacao:       rep.CreatedAt.Format(time.RFC3339),
		UltimaAtualizacao: rep.UpdatedAt.Format(time.RFC3339),
	}
	return resp
}
