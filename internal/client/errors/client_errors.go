package clienterrors

import (
	"net/http"

	"go-engnet/internal/shared/apperror"
)

var (
	ErrClientNotFound = apperror.New(
		apperror.CodeNotFound,
		"cliente não encontrado",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"já existe um cliente com este email",
		http.StatusConflict,
	)
	ErrClientHasSales = apperror.New(
		apperror.CodeConflict,
		"não foi possível excluir: o cliente possui vendas vinculadas",
		http.StatusConflict,
	)
	ErrInvalidClientID = apperror.New(
		apperror.CodeInvalidInput,
		"id de cliente inválido",
		http.StatusBadRequest,
	)
)
