package sale

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Sale struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code       string          `gorm:"type:varchar(20);uniqueIndex:uq_sales_code;not null"`
	ClientID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_sales_client"`
	SellerName string          `gorm:"type:varchar(255);not null"`
	Category   string          `gorm:"type:varchar(60);not null"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	SaleDate   time.Time       `gorm:"type:date;not null"`
	Status     string          `gorm:"type:varchar(20);not null;default:'PROCESSANDO';index:idx_sales_status"`
	About      string          `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	StatusProcessing = "PROCESSANDO"
	StatusPending    = "PENDENTE"
	StatusCompleted  = "CONCLUIDA"
	StatusCancelled  = "CANCELADA"
)

// Categories mirror the commercial catalog the dashboard offers.
var Categories = []string{
	"Serviços Consultoria",
	"Licenças Software",
	"Suporte Técnico",
	"Desenvolvimento Customizado",
	"Implantação Sistema",
	"Treinamento",
}
