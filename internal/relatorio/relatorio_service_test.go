package relatorio_test

import (
	"context"
	"testing"

	"go-engnet/internal/relatorio"
	relatorioerrors "go-engnet/internal/relatorio/errors"
	"go-engnet/internal/shared/identity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeReportRepository struct {
	createFn   func(ctx context.Context, rep *relatorio.Report) error
	findPageFn func(ctx context.Context, q relatorio.ListQuery) ([]relatorio.Report, int64, error)
	findByIDFn func(ctx context.Context, id string) (*relatorio.Report, error)
	updateFn   func(ctx context.Context, rep *relatorio.Report) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeReportRepository) Create(ctx context.Context, rep *relatorio.Report) error {
	if f.createFn != nil {
		return f.createFn(ctx, rep)
	}
	return nil
}

func (f *fakeReportRepository) FindPage(ctx context.Context, q relatorio.ListQuery) ([]relatorio.Report, int64, error) {
	if f.findPageFn != nil {
		return f.findPageFn(ctx, q)
	}
	return nil, 0, nil
}

func (f *fakeReportRepository) FindByID(ctx context.Context, id string) (*relatorio.Report, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReportRepository) Update(ctx context.Context, rep *relatorio.Report) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, rep)
	}
	return nil
}

func (f *fakeReportRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func validReportRequest() relatorio.CreateReportRequest {
	return relatorio.CreateReportRequest{
		Nome:      "Reembolsos do trimestre",
		Categoria: "Reembolsos",
		Tipo:      "Reembolsos por Categoria",
		Periodo:   "Trimestral",
	}
}

func adminActor() identity.Actor {
	return identity.Actor{ID: uuid.New().String(), Name: "Ana Admin", Role: identity.RoleAdmin}
}

func TestReportService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults status to processing and records the author", func(t *testing.T) {
		var created *relatorio.Report
		repo := &fakeReportRepository{
			createFn: func(ctx context.Context, rep *relatorio.Report) error {
				created = rep
				return nil
			},
		}
		svc := relatorio.NewService(repo)

		resp, err := svc.Create(ctx, adminActor(), validReportRequest())

		assert.NoError(t, err)
		assert.Equal(t, relatorio.StatusProcessing, resp.Status)
		assert.Equal(t, "Ana Admin", resp.UsuarioCriacao)
		assert.NotNil(t, created)
		assert.Equal(t, "Reembolsos", created.Category)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		svc := relatorio.NewService(&fakeReportRepository{})

		req := validReportRequest()
		req.Categoria = "Marketing"
		_, err := svc.Create(ctx, adminActor(), req)

		assert.ErrorIs(t, err, relatorioerrors.ErrInvalidCategory)
	})

	t.Run("rejects type outside the category catalog", func(t *testing.T) {
		svc := relatorio.NewService(&fakeReportRepository{})

		req := validReportRequest()
		req.Tipo = "Fluxo de Caixa"
		_, err := svc.Create(ctx, adminActor(), req)

		assert.ErrorIs(t, err, relatorioerrors.ErrTypeOutsideCategory)
	})

	t.Run("rejects unknown period", func(t *testing.T) {
		svc := relatorio.NewService(&fakeReportRepository{})

		req := validReportRequest()
		req.Periodo = "Quinzenal"
		_, err := svc.Create(ctx, adminActor(), req)

		assert.ErrorIs(t, err, relatorioerrors.ErrInvalidPeriod)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		svc := relatorio.NewService(&fakeReportRepository{})

		req := validReportRequest()
		req.Status = "Pendente"
		_, err := svc.Create(ctx, adminActor(), req)

		assert.ErrorIs(t, err, relatorioerrors.ErrInvalidStatus)
	})
}

func TestReportService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes page and limit before querying", func(t *testing.T) {
		var got relatorio.ListQuery
		repo := &fakeReportRepository{
			findPageFn: func(ctx context.Context, q relatorio.ListQuery) ([]relatorio.Report, int64, error) {
				got = q
				return nil, 0, nil
			},
		}
		svc := relatorio.NewService(repo)

		_, _, q, err := svc.List(ctx, relatorio.ListQuery{Pagina: 0, Limite: 0})

		assert.NoError(t, err)
		assert.Equal(t, 1, got.Pagina)
		assert.Equal(t, 10, got.Limite)
		assert.Equal(t, got, q)
	})

	t.Run("caps oversized limits", func(t *testing.T) {
		var got relatorio.ListQuery
		repo := &fakeReportRepository{
			findPageFn: func(ctx context.Context, q relatorio.ListQuery) ([]relatorio.Report, int64, error) {
				got = q
				return nil, 0, nil
			},
		}
		svc := relatorio.NewService(repo)

		_, _, _, err := svc.List(ctx, relatorio.ListQuery{Pagina: 2, Limite: 500})

		assert.NoError(t, err)
		assert.Equal(t, 100, got.Limite)
	})

	t.Run("returns the repository total", func(t *testing.T) {
		repo := &fakeReportRepository{
			findPageFn: func(ctx context.Context, q relatorio.ListQuery) ([]relatorio.Report, int64, error) {
				return []relatorio.Report{{ID: uuid.New(), Name: "Vendas do mês"}}, 37, nil
			},
		}
		svc := relatorio.NewService(repo)

		items, total, _, err := svc.List(ctx, relatorio.ListQuery{})

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, int64(37), total)
	})
}

func TestReportService_Update(t *testing.T) {
	ctx := context.Background()

	existing := func() *relatorio.Report {
		return &relatorio.Report{
			ID:        uuid.New(),
			Name:      "Reembolsos do trimestre",
			Category:  "Reembolsos",
			Type:      "Reembolsos por Categoria",
			Period:    "Trimestral",
			Status:    relatorio.StatusAvailable,
			CreatedBy: "Ana Admin",
		}
	}

	t.Run("applies partial fields and records the editor", func(t *testing.T) {
		rep := existing()
		var saved *relatorio.Report
		repo := &fakeReportRepository{
			findByIDFn: func(ctx context.Context, id string) (*relatorio.Report, error) { return rep, nil },
			updateFn: func(ctx context.Context, r *relatorio.Report) error {
				saved = r
				return nil
			},
		}
		svc := relatorio.NewService(repo)

		novoNome := "Reembolsos Q3"
		resp, err := svc.Update(ctx, adminActor(), rep.ID.String(), relatorio.UpdateReportRequest{Nome: &novoNome})

		assert.NoError(t, err)
		assert.Equal(t, "Reembolsos Q3", resp.Nome)
		assert.Equal(t, "Reembolsos", resp.Categoria)
		assert.NotNil(t, saved.UpdatedBy)
		assert.Equal(t, "Ana Admin", *saved.UpdatedBy)
	})

	t.Run("rejects category change that orphans the type", func(t *testing.T) {
		rep := existing()
		repo := &fakeReportRepository{
			findByIDFn: func(ctx context.Context, id string) (*relatorio.Report, error) { return rep, nil },
		}
		svc := relatorio.NewService(repo)

		novaCategoria := "Financeiro"
		_, err := svc.Update(ctx, adminActor(), rep.ID.String(), relatorio.UpdateReportRequest{Categoria: &novaCategoria})

		assert.ErrorIs(t, err, relatorioerrors.ErrTypeOutsideCategory)
	})

	t.Run("unknown report maps to not found", func(t *testing.T) {
		svc := relatorio.NewService(&fakeReportRepository{})

		_, err := svc.Update(ctx, adminActor(), uuid.New().String(), relatorio.UpdateReportRequest{})

		assert.ErrorIs(t, err, relatorioerrors.ErrReportNotFound)
	})

	t.Run("malformed id rejected before hitting the repository", func(t *testing.T) {
		svc := relatorio.NewService(&fakeReportRepository{})

		_, err := svc.Update(ctx, adminActor(), "not-a-uuid", relatorio.UpdateReportRequest{})

		assert.ErrorIs(t, err, relatorioerrors.ErrInvalidReportID)
	})
}

func TestReportService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes by id", func(t *testing.T) {
		var deleted string
		repo := &fakeReportRepository{
			deleteFn: func(ctx context.Context, id string) error {
				deleted = id
				return nil
			},
		}
		svc := relatorio.NewService(repo)

		id := uuid.New().String()
		assert.NoError(t, svc.Delete(ctx, id))
		assert.Equal(t, id, deleted)
	})

	t.Run("malformed id rejected", func(t *testing.T) {
		svc := relatorio.NewService(&fakeReportRepository{})
		assert.ErrorIs(t, svc.Delete(ctx, "abc"), relatorioerrors.ErrInvalidReportID)
	})
}
