package client

import (
	"context"
	"errors"
	"strings"
	"time"

	clienterrors "go-engnet/internal/client/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=client_service.go -destination=mock/client_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateClientRequest) (ClientResponse, error)
	GetAll(ctx context.Context) ([]ClientResponse, error)
	GetByID(ctx context.Context, id string) (ClientResponse, error)
	Update(ctx context.Context, id string, req UpdateClientRequest) (ClientResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("client.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("client.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateClientRequest) (ClientResponse, error) {
	status := req.Status
	if status == "" {
		status = StatusNew
	}

	c := &Client{
		ID:          uuid.New(),
		CompanyName: req.NomeEmpresa,
		ContactName: req.NomeContato,
		Email:       req.Email,
		Phone:       req.Telefone,
		Address:     req.Endereco,
		City:        req.Cidade,
		State:       strings.ToUpper(req.Estado),
		ZipCode:     req.CEP,
		CNPJ:        req.CNPJ,
		Status:      status,
		About:       req.Descricao,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("create client persist failed", zap.Error(err))
		return ClientResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create client success", zap.String("client_id", c.ID.String()))
	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context) ([]ClientResponse, error) {
	clients, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ClientResponse, len(clients))
	for i, c := range clients {
		resp[i] = mapToResponse(c)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ClientResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ClientResponse{}, clienterrors.ErrInvalidClientID
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ClientResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateClientRequest) (ClientResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ClientResponse{}, clienterrors.ErrInvalidClientID
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ClientResponse{}, mapRepositoryError(err)
	}

	if req.NomeEmpresa != nil {
		c.CompanyName = *req.NomeEmpresa
	}
	if req.NomeContato != nil {
		c.ContactName = *req.NomeContato
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Telefone != nil {
		c.Phone = *req.Telefone
	}
	if req.Endereco != nil {
		c.Address = *req.Endereco
	}
	if req.Cidade != nil {
		c.City = *req.Cidade
	}
	if req.Estado != nil {
		c.State = strings.ToUpper(*req.Estado)
	}
	if req.CEP != nil {
		c.ZipCode = *req.CEP
	}
	if req.CNPJ != nil {
		c.CNPJ = *req.CNPJ
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.Descricao != nil {
		c.About = *req.Descricao
	}

	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error("update client persist failed", zap.String("client_id", id), zap.Error(err))
		return ClientResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update client success", zap.String("client_id", id))
	return mapToResponse(*c), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return clienterrors.ErrInvalidClientID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("delete client failed", zap.String("client_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete client success", zap.String("client_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return clienterrors.ErrClientNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return clienterrors.ErrEmailAlreadyExists
		case "23503":
			return clienterrors.ErrClientHasSales
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "violates foreign key constraint") {
		return clienterrors.ErrClientHasSales
	}

	return err
}

func mapToResponse(c Client) ClientResponse {
	return ClientResponse{
		ID:                c.ID.String(),
		NomeEmpresa:       c.CompanyName,
		NomeContato:       c.ContactName,
		Email:             c.Email,
		Telefone:          c.Phone,
		Endereco:          c.Address,
		Cidade:            c.City,
		Estado:            c.State,
		CEP:               c.ZipCode,
		CNPJ:              c.CNPJ,
		Status:            c.Status,
		Descricao:         c.About,
		DataCriacao:       c.CreatedAt.Format(time.RFC3339),
		UltimaAtualizacao: c.UpdatedAt.Format(time.RFC3339),
	}
}
