package reimbursement

import "github.com/shopspring/decimal"

type CreateReimbursementRequest struct {
	Categoria     string          `json:"categoria" binding:"required"`
	Descricao     string          `json:"descricao"`
	Justificativa string          `json:"justificativa"`
	Valor         decimal.Decimal `json:"valor"`
	DataDespesa   string          `json:"dataDespesa"`
	Anexo         *string         `json:"anexo"`
	Status        string          `json:"status" binding:"omitempty,oneof=DRAFT PENDING"`
}

type UpdateReimbursementRequest struct {
	Categoria     *string          `json:"categoria"`
	Descricao     *string          `json:"descricao"`
	Justificativa *string          `json:"justificativa"`
	Valor         *decimal.Decimal `json:"valor"`
	DataDespesa   *string          `json:"dataDespesa"`
	Anexo         *string          `json:"anexo"`
	Status        *string          `json:"status" binding:"omitempty,oneof=DRAFT PENDING APPROVED REJECTED"`
}

// HasContentFields reports whether the request touches anything besides status.
func (r UpdateReimbursementRequest) HasContentFields() bool {
	return r.Categoria != nil ||
		r.Descricao != nil ||
		r.Justificativa != nil ||
		r.Valor != nil ||
		r.DataDespesa != nil ||
		r.Anexo != nil
}

type ReimbursementResponse struct {
	ID                string          `json:"id"`
	Codigo            string          `json:"codigo"`
	IDFuncionario     string          `json:"idFuncionario"`
	NomeFuncionario   string          `json:"nomeFuncionario"`
	Categoria         string          `json:"categoria"`
	Descricao         string          `json:"descricao"`
	Justificativa     string          `json:"justificativa,omitempty"`
	Valor             decimal.Decimal `json:"valor"`
	DataDespesa       string          `json:"dataDespesa"`
	Anexo             *string         `json:"anexo,omitempty"`
	Status            string          `json:"status"`
	DecididoPor       *string         `json:"decididoPor,omitempty"`
	DataDecisao       *string         `json:"dataDecisao,omitempty"`
	DataCriacao       string          `json:"dataCriacao"`
	UltimaAtualizacao string          `json:"ultimaAtualizacao"`
}
