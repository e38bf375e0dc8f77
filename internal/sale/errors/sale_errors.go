package saleerrors

import (
	"net/http"

	"go-engnet/internal/shared/apperror"
)

var (
	ErrSaleNotFound = apperror.New(
		apperror.CodeNotFound,
		"venda não encontrada",
		http.StatusNotFound,
	)
	ErrInvalidSaleID = apperror.New(
		apperror.CodeInvalidInput,
		"id de venda inválido",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"valorVenda deve ser maior que zero",
		http.StatusBadRequest,
	)
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"categoria de venda inválida",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"data inválida, formato esperado YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrClientNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"cliente informado não existe",
		http.StatusBadRequest,
	)
	ErrSaleHasTransactions = apperror.New(
		apperror.CodeConflict,
		"não foi possível excluir: a venda possui registros vinculados",
		http.StatusConflict,
	)
)
