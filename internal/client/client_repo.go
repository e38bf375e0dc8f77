package client

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=client_repo.go -destination=mock/client_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, c *Client) error
	FindAll(ctx context.Context) ([]Client, error)
	FindByID(ctx context.Context, id string) (*Client, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Client, error) {
	var clients []Client
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&clients).Error
	return clients, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Client, error) {
	var c Client
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) Update(ctx context.Context, c *Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Client{}, "id = ?", id).Error
}
