package client

import (
	"time"

	"github.com/google/uuid"
)

// Client rows are deleted physically; sales referencing the client block
// deletion through the FK and surface as a conflict.
type Client struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyName string    `gorm:"type:varchar(255);not null"`
	ContactName string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex:uq_clients_email;not null"`
	Phone       string    `gorm:"type:varchar(30);not null"`
	Address     string    `gorm:"type:varchar(255)"`
	City        string    `gorm:"type:varchar(120)"`
	State       string    `gorm:"type:varchar(2)"`
	ZipCode     string    `gorm:"type:varchar(12)"`
	CNPJ        string    `gorm:"type:varchar(20)"`
	Status      string    `gorm:"type:varchar(20);not null;default:'NOVO';index:idx_clients_status"`
	About       string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	StatusVIP      = "VIP"
	StatusActive   = "ATIVO"
	StatusInactive = "INATIVO"
	StatusNew      = "NOVO"
)
