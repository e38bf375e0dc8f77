package sale

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=sale_repo.go -destination=mock/sale_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, s *Sale) error
	FindAll(ctx context.Context) ([]Sale, error)
	FindByID(ctx context.Context, id string) (*Sale, error)
	Update(ctx context.Context, s *Sale) error
	Delete(ctx context.Context, id string) error
	ClientExists(ctx context.Context, clientID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Sale) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Sale, error) {
	var sales []Sale
	err := r.db.WithContext(ctx).
		Order("sale_date DESC").
		Find(&sales).Error
	return sales, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Sale, error) {
	var s Sale
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) Update(ctx context.Context, s *Sale) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Sale{}, "id = ?", id).Error
}

func (r *repository) ClientExists(ctx context.Context, clientID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("clients").
		Where("id = ?", clientID).
		Count(&count).Error
	return count > 0, err
}
