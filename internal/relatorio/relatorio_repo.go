package relatorio

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=relatorio_repo.go -destination=mock/relatorio_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, rep *Report) error
	FindPage(ctx context.Context, q ListQuery) ([]Report, int64, error)
	FindByID(ctx context.Context, id string) (*Report, error)
	Update(ctx context.Context, rep *Report) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rep *Report) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

// FindPage filters and pages in the database; q is assumed normalized by the
// service (positive page, bounded limit).
func (r *repository) FindPage(ctx context.Context, q ListQuery) ([]Report, int64, error) {
	tx := r.db.WithContext(ctx).Model(&Report{})

	if q.Categoria != "" {
		tx = tx.Where("category = ?", q.Categoria)
	}
	if q.Tipo != "" {
		tx = tx.Where("type = ?", q.Tipo)
	}
	if q.Periodo != "" {
		tx = tx.Where("period = ?", q.Periodo)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Busca != "" {
		like := "%" + q.Busca + "%"
		tx = tx.Where("name ILIKE ? OR type ILIKE ? OR description ILIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []Report
	err := tx.
		Order("created_at DESC").
		Offset((q.Pagina - 1) * q.Limite).
		Limit(q.Limite).
		Find(&reports).Error
	return reports, total, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Report, error) {
	var rep Report
	err := r.db.WithContext(ctx).First(&rep, "id = ?", id).Error
	return &rep, err
}

func (r *repository) Update(ctx context.Context, rep *Report) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Report{}, "id = ?", id).Error
}
