package sale

import "github.com/shopspring/decimal"

type CreateSaleRequest struct {
	ClienteID    string          `json:"clienteId" binding:"required,uuid"`
	NomeVendedor string          `json:"nomeVendedor" binding:"required"`
	Categoria    string          `json:"categoria" binding:"required"`
	ValorVenda   decimal.Decimal `json:"valorVenda"`
	DataVenda    string          `json:"dataVenda" binding:"required"`
	Status       string          `json:"status" binding:"omitempty,oneof=PROCESSANDO PENDENTE CONCLUIDA CANCELADA"`
	Descricao    string          `json:"descricao"`
}

type UpdateSaleRequest struct {
	NomeVendedor *string          `json:"nomeVendedor"`
	Categoria    *string          `json:"categoria"`
	ValorVenda   *decimal.Decimal `json:"valorVenda"`
	DataVenda    *string          `json:"dataVenda"`
	Status       *string          `json:"status" binding:"omitempty,oneof=PROCESSANDO PENDENTE CONCLUIDA CANCELADA"`
	Descricao    *string          `json:"descricao"`
}

type SaleResponse struct {
	ID                string          `json:"id"`
	NumeroVenda       string          `json:"numeroVenda"`
	ClienteID         string          `json:"clienteId"`
	NomeVendedor      string          `json:"nomeVendedor"`
	Categoria         string          `json:"categoria"`
	ValorVenda        decimal.Decimal `json:"valorVenda"`
	DataVenda         string          `json:"dataVenda"`
	Status            string          `json:"status"`
	Descricao         string          `json:"descricao,omitempty"`
	DataCriacao       string          `json:"dataCriacao"`
	UltimaAtualizacao string          `json:"ultimaAtualizacao"`
}
