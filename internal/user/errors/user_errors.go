package usererrors

import (
	"net/http"

	"go-engnet/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"usuário não encontrado",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"já existe um usuário com este email",
		http.StatusConflict,
	)
	ErrUserHasReimbursements = apperror.New(
		apperror.CodeConflict,
		"não foi possível excluir: o usuário possui reembolsos vinculados",
		http.StatusConflict,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"id de usuário inválido",
		http.StatusBadRequest,
	)
)
