package relatorio

import (
	"time"

	"github.com/google/uuid"
)

// Report is a generated management report. The file itself lives outside the
// database; FilePath is an identity reference only.
type Report struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(60);not null;index:idx_reports_category"`
	Type        string    `gorm:"type:varchar(120);not null"`
	Period      string    `gorm:"type:varchar(30);not null"`
	Status      string    `gorm:"type:varchar(30);not null;default:'Processando';index:idx_reports_status"`
	Description string    `gorm:"type:text"`
	Size        string    `gorm:"type:varchar(20)"`
	FilePath    *string   `gorm:"type:varchar(512)"`
	CreatedBy   string    `gorm:"type:varchar(255);not null"`
	UpdatedBy   *string   `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Report) TableName() string { return "reports" }

const (
	StatusAvailable  = "Disponível"
	StatusProcessing = "Processando"
	StatusError      = "Erro"
	StatusArchived   = "Arquivado"
)

var Statuses = []string{
	StatusAvailable,
	StatusProcessing,
	StatusError,
	StatusArchived,
}

var Categories = []string{
	"Vendas",
	"Estoque",
	"Clientes",
	"Financeiro",
	"Análise",
	"Reembolsos",
}

var Periods = []string{
	"Diário",
	"Semanal",
	"Mensal",
	"Trimestral",
	"Anual",
	"Personalizado",
}

// TypesByCategory restricts a report's type to its category's catalog.
var TypesByCategory = map[string][]string{
	"Vendas":     {"Vendas Mensais", "Vendas Diárias", "Performance de Vendas", "Meta vs Realizado"},
	"Estoque":    {"Estoque Detalhado", "Movimentação de Estoque", "Produtos Mais Vendidos", "Níveis Críticos"},
	"Clientes":   {"Clientes Ativos", "Clientes Inativos", "Análise de Risco", "Satisfação do Cliente"},
	"Financeiro": {"Fluxo de Caixa", "Reembolsos Pendentes", "Contas a Pagar", "Contas a Receber"},
	"Análise":    {"Análise Comparativa", "Tendências", "Previsões", "Índices de Desempenho"},
	"Reembolsos": {"Reembolsos por Funcionário", "Reembolsos por Categoria", "Status de Reembolsos", "Análise de Despesas"},
}
